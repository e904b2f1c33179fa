package query_test

import (
	"testing"

	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestSearchOptions(t *testing.T) {
	t.Parallel()

	base := query.NewOptions().WithLimit(10).WithQ("OLD eq 1")

	t.Run("criteria replace q", func(t *testing.T) {
		t.Parallel()

		opts := query.SearchOptions(query.NewCriteria().Where("code", query.Literal("A")), base)
		assert.Equal(t, "limit=10&q=CODE%20eq%20%27A%27", opts.Encode())
	})

	t.Run("empty criteria omit q", func(t *testing.T) {
		t.Parallel()

		opts := query.SearchOptions(query.NewCriteria(), base)
		assert.Equal(t, "limit=10", opts.Encode())
	})

	t.Run("base options untouched", func(t *testing.T) {
		t.Parallel()

		_ = query.SearchOptions(query.NewCriteria().Where("code", query.Literal("B")), base)
		assert.Equal(t, "OLD eq 1", base.Q)
	})

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		opts := query.SearchOptions(query.NewCriteria().Where("status", query.Literal(1)), nil)
		assert.Equal(t, "q=STATUS%20eq%201", opts.Encode())
	})
}

func TestPathWithQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/items", query.PathWithQuery("/items", nil))
	assert.Equal(t, "/items", query.PathWithQuery("/items", query.NewOptions().WithCount(false)))
	assert.Equal(t, "/items?limit=1", query.PathWithQuery("/items", query.NewOptions().WithLimit(1)))
	assert.Equal(t, "/items/42?expandLevel=full", query.PathWithQuery("/items/42", query.NewOptions().WithExpandLevel("full")))
}
