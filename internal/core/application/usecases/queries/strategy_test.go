package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want queries.Strategy
	}{
		{"lazy", queries.LazyLoad},
		{"fetch-join", queries.FetchJoin},
		{"batch-fetch", queries.BatchFetch},
		{"direct-per-order", queries.DirectPerOrder},
		{"direct", queries.Direct},
		{"flat", queries.Flat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := queries.ParseStrategy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	_, err := queries.ParseStrategy("eager")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStrategy_Validate(t *testing.T) {
	require.NoError(t, queries.Flat.Validate())
	require.ErrorIs(t, queries.UnknownStrategy.Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", queries.Strategy(42).String())
}

func TestStrategy_Capabilities(t *testing.T) {
	paging := map[queries.Strategy]bool{
		queries.LazyLoad:       false,
		queries.FetchJoin:      false,
		queries.BatchFetch:     true,
		queries.DirectPerOrder: true,
		queries.Direct:         true,
		queries.Flat:           false,
	}
	search := map[queries.Strategy]bool{
		queries.LazyLoad:       true,
		queries.FetchJoin:      false,
		queries.BatchFetch:     false,
		queries.DirectPerOrder: true,
		queries.Direct:         true,
		queries.Flat:           true,
	}

	for s, want := range paging {
		assert.Equal(t, want, s.SupportsPaging(), s.String())
	}
	for s, want := range search {
		assert.Equal(t, want, s.SupportsSearch(), s.String())
	}
}
