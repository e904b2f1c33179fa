package query_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria *query.Criteria
		expected string
		ok       bool
	}{
		{
			name:     "nil criteria",
			criteria: nil,
		},
		{
			name:     "empty criteria",
			criteria: query.NewCriteria(),
		},
		{
			name: "all unset",
			criteria: query.NewCriteria().
				Where("code", query.FieldValue{}).
				Where("status", query.Operators()),
		},
		{
			name: "literals",
			criteria: query.NewCriteria().
				Where("code", query.Literal("ABC")).
				Where("status", query.Literal(1)),
			expected: "CODE eq 'ABC' and STATUS eq 1",
			ok:       true,
		},
		{
			name:     "like",
			criteria: query.NewCriteria().Where("code", query.Operators(query.Like("AB*"))),
			expected: "CODE like 'AB*'",
			ok:       true,
		},
		{
			name:     "range",
			criteria: query.NewCriteria().Where("price", query.Operators(query.Gte(100), query.Lte(500))),
			expected: "PRICE gte 100 and PRICE lte 500",
			ok:       true,
		},
		{
			name:     "in",
			criteria: query.NewCriteria().Where("status", query.Operators(query.In(1, 2, 3))),
			expected: "(STATUS eq 1 or STATUS eq 2 or STATUS eq 3)",
			ok:       true,
		},
		{
			name:     "any of",
			criteria: query.NewCriteria().Where("tags", query.AnyOf("A", "B")),
			expected: "(TAGS eq 'A' or TAGS eq 'B')",
			ok:       true,
		},
		{
			name:     "any of single value keeps parentheses",
			criteria: query.NewCriteria().Where("tags", query.AnyOf("A")),
			expected: "(TAGS eq 'A')",
			ok:       true,
		},
		{
			name:     "empty any of is skipped",
			criteria: query.NewCriteria().Where("tags", query.AnyOf[string]()).Where("code", query.Literal("X")),
			expected: "CODE eq 'X'",
			ok:       true,
		},
		{
			name: "in mixed with other operators",
			criteria: query.NewCriteria().
				Where("cardType", query.Operators(query.Ne(0), query.In(1, 2))),
			expected: "CARD_TYPE ne 0 and (CARD_TYPE eq 1 or CARD_TYPE eq 2)",
			ok:       true,
		},
		{
			name: "insertion order is kept",
			criteria: query.NewCriteria().
				Where("status", query.Literal(1)).
				Where("arpCode", query.Literal("120.01")).
				Where("active", query.Literal(true)),
			expected: "STATUS eq 1 and ARP_CODE eq '120.01' and ACTIVE eq true",
			ok:       true,
		},
		{
			name: "unset entries between set ones",
			criteria: query.NewCriteria().
				Where("code", query.Literal("A")).
				Where("name", query.FieldValue{}).
				Where("status", query.Literal(2)),
			expected: "CODE eq 'A' and STATUS eq 2",
			ok:       true,
		},
		{
			name: "dates and quotes",
			criteria: query.NewCriteria().
				Where("dateCreated", query.Operators(query.Gt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))).
				Where("title", query.Literal("Joe's")),
			expected: "DATE_CREATED gt '2024-01-01T00:00:00Z' and TITLE eq 'Joe''s'",
			ok:       true,
		},
		{
			name: "same field twice",
			criteria: query.NewCriteria().
				Where("price", query.Operators(query.Gt(1))).
				Where("price", query.Literal(5)),
			expected: "PRICE gt 1 and PRICE eq 5",
			ok:       true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, ok := query.Compile(tt.criteria)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, filter)

			if ok {
				assert.NotEmpty(t, filter)
			}
		})
	}
}

func TestCompile_Concurrent(t *testing.T) {
	t.Parallel()

	criteria := query.NewCriteria().
		Where("code", query.Operators(query.Like("AB*"))).
		Where("status", query.AnyOf(1, 2))

	expected, ok := query.Compile(criteria)
	require.True(t, ok)

	var wg sync.WaitGroup

	results := make([]string, 32)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], _ = query.Compile(criteria)
		}(i)
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, expected, got)
	}
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.msgs = append(l.msgs, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

func TestTracer_Compile(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	tracer := query.NewTracer(logger)

	criteria := query.NewCriteria().
		Where("code", query.Literal("A")).
		Where("name", query.FieldValue{})

	filter, ok := tracer.Compile(criteria)
	require.True(t, ok)
	assert.Equal(t, "CODE eq 'A'", filter)
	assert.Equal(t, []string{"criteria clause", "criteria entry skipped", "criteria compiled"}, logger.msgs)

	filter, ok = query.NewTracer(nil).Compile(nil)
	assert.False(t, ok)
	assert.Empty(t, filter)
}
