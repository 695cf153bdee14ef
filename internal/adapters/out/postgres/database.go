package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/querystats"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL with the settings every component relies on:
// duplicate key errors translated to gorm.ErrDuplicatedKey and statement counting.
func Open(dsn string, log *slog.Logger) (*gorm.DB, error) {
	gormLogger := logger.Discard
	if log != nil && log.Enabled(context.Background(), slog.LevelDebug) {
		gormLogger = logger.New(slogWriter{log.With("component", "gorm")}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Use(querystats.New()); err != nil {
		return nil, fmt.Errorf("register querystats: %w", err)
	}

	return db, nil
}

// Models lists the persisted DTOs in table creation order.
func Models() []any {
	return []any{
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// AutoMigrate creates or updates every table of the shop schema from the DTOs. The
// result matches what the SQL migrations create.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// aggregateType names a tracked aggregate for logging.
func aggregateType(aggregate any) string {
	switch aggregate.(type) {
	case *member.Member:
		return "member"
	case *item.Item:
		return "item"
	case *order.Order:
		return "order"
	default:
		return fmt.Sprintf("%T", aggregate)
	}
}

// slogWriter routes the GORM statement log to slog at debug level.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...))
}
