// Package querystats is a GORM plugin that counts the SQL statements sent on behalf of
// a context. It makes the round trips of the order retrieval strategies observable in
// tests and in the per-route metrics.
//
// Example:
//
//	db.Use(querystats.New())
//	ctx, counter := querystats.WithCounter(ctx)
//	db.WithContext(ctx).Find(&orders)
//	fmt.Println(counter.Count()) // 1
package querystats

import (
	"context"
	"sync/atomic"

	"gorm.io/gorm"
)

const callbackName = "querystats:count"

// Counter holds the number of statements executed with a context.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) Count() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

func (c *Counter) Reset() {
	c.n.Store(0)
}

type counterKey struct{}

// WithCounter returns a context that counts the statements executed with it.
func WithCounter(ctx context.Context) (context.Context, *Counter) {
	c := &Counter{}
	return context.WithValue(ctx, counterKey{}, c), c
}

// FromContext returns the counter attached by WithCounter or nil.
func FromContext(ctx context.Context) *Counter {
	c, _ := ctx.Value(counterKey{}).(*Counter)
	return c
}

// Plugin registers the counting callbacks.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string {
	return "querystats"
}

func (p *Plugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	registrations := []func(name string, fn func(*gorm.DB)) error{
		cb.Query().After("gorm:query").Register,
		cb.Row().After("gorm:row").Register,
		cb.Raw().After("gorm:raw").Register,
		cb.Create().After("gorm:create").Register,
		cb.Update().After("gorm:update").Register,
		cb.Delete().After("gorm:delete").Register,
	}
	for _, register := range registrations {
		if err := register(callbackName, count); err != nil {
			return err
		}
	}

	return nil
}

func count(db *gorm.DB) {
	if db.DryRun || db.Statement.SQL.Len() == 0 {
		return
	}
	if c := FromContext(db.Statement.Context); c != nil {
		c.n.Add(1)
	}
}
