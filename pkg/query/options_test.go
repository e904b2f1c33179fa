package query_test

import (
	"net/url"
	"testing"

	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestOptions_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		options  *query.Options
		expected string
	}{
		{
			name:     "nil options",
			options:  nil,
			expected: "",
		},
		{
			name:     "empty options",
			options:  query.NewOptions(),
			expected: "",
		},
		{
			name:     "pagination and sort",
			options:  query.NewOptions().WithLimit(10).WithOffset(0).WithSort(query.Asc("FICHENO")),
			expected: "limit=10&offset=0&sort=FICHENO",
		},
		{
			name:     "fields",
			options:  query.NewOptions().WithFields("FICHENO", "DATE"),
			expected: "fields=FICHENO,DATE",
		},
		{
			name:     "count false",
			options:  query.NewOptions().WithCount(false),
			expected: "",
		},
		{
			name:     "count true",
			options:  query.NewOptions().WithCount(true),
			expected: "count=true",
		},
		{
			name:     "q is percent encoded",
			options:  query.NewOptions().WithQ("CODE eq 'A&B'"),
			expected: "q=CODE%20eq%20%27A%26B%27",
		},
		{
			name:     "descending multi field sort",
			options:  query.NewOptions().WithSort(query.Desc("DATE", "FICHENO")),
			expected: "sort=-DATE,-FICHENO",
		},
		{
			name:     "ascending multi field sort",
			options:  query.NewOptions().WithSort(query.Asc("DATE", "FICHENO")),
			expected: "sort=DATE,FICHENO",
		},
		{
			name:     "single field with direction",
			options:  query.NewOptions().WithSort(query.SortBy(query.Descending, "DATE")),
			expected: "sort=-DATE",
		},
		{
			name:     "empty sort is omitted",
			options:  query.NewOptions().WithSort(query.Asc()),
			expected: "",
		},
		{
			name:     "empty fields are omitted",
			options:  query.NewOptions().WithFields(),
			expected: "",
		},
		{
			name: "fixed order regardless of builder order",
			options: query.NewOptions().
				WithExpandLevel("full").
				WithCount(true).
				WithQ("STATUS eq 1").
				WithFields("CODE").
				WithSort(query.Asc("CODE")).
				WithOffset(20).
				WithLimit(10),
			expected: "limit=10&offset=20&sort=CODE&fields=CODE&q=STATUS%20eq%201&count=true&expandLevel=full",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.options.Encode())
			assert.Equal(t, tt.expected, query.Build(tt.options))
		})
	}
}

func TestOptions_ToValues(t *testing.T) {
	t.Parallel()

	options := query.NewOptions().
		WithLimit(25).
		WithSort(query.Desc("DATE")).
		WithFields("CODE", "NAME").
		WithQ("CODE eq 'A'").
		WithCount(true)

	assert.Equal(t, url.Values{
		"limit":  []string{"25"},
		"sort":   []string{"-DATE"},
		"fields": []string{"CODE,NAME"},
		"q":      []string{"CODE eq 'A'"},
		"count":  []string{"true"},
	}, options.ToValues())
}

func TestOptions_Builders(t *testing.T) {
	t.Parallel()

	t.Run("WithFields replaces", func(t *testing.T) {
		t.Parallel()

		options := query.NewOptions().WithFields("A").WithFields("B", "C")
		assert.Equal(t, []string{"B", "C"}, options.Fields)
	})

	t.Run("WithCriteria compiles into q", func(t *testing.T) {
		t.Parallel()

		options := query.NewOptions().WithCriteria(query.NewCriteria().Where("code", query.Literal("A")))
		assert.Equal(t, "CODE eq 'A'", options.Q)
	})

	t.Run("WithCriteria clears q for empty criteria", func(t *testing.T) {
		t.Parallel()

		options := query.NewOptions().WithQ("X eq 1").WithCriteria(query.NewCriteria())
		assert.Empty(t, options.Q)
		assert.Equal(t, "", options.Encode())
	})

	t.Run("Clone is deep", func(t *testing.T) {
		t.Parallel()

		original := query.NewOptions().WithLimit(1).WithOffset(2).WithSort(query.Asc("A")).WithFields("A")
		clone := original.Clone()

		*clone.Limit = 10
		*clone.Offset = 20
		clone.Sort.Fields[0] = "B"
		clone.Fields[0] = "B"

		assert.Equal(t, 1, *original.Limit)
		assert.Equal(t, 2, *original.Offset)
		assert.Equal(t, []string{"A"}, original.Sort.Fields)
		assert.Equal(t, []string{"A"}, original.Fields)
	})
}
