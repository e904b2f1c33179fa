package query_test

import (
	"testing"

	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"eq", "ne", "gt", "gte", "lt", "lte", "like", "in"} {
		op, err := query.ParseOp(name)
		require.NoError(t, err)
		assert.Equal(t, name, op.String())
	}

	op, err := query.ParseOp(" GTE ")
	require.NoError(t, err)
	assert.Equal(t, query.OpGte, op)

	_, err = query.ParseOp("between")
	require.ErrorIs(t, err, query.ErrUnknownOperator)
}

func TestNewCondition(t *testing.T) {
	t.Parallel()

	cond, err := query.NewCondition(query.OpIn, query.ValueOf(1), query.ValueOf(2))
	require.NoError(t, err)
	assert.Equal(t, query.OpIn, cond.Op())
	assert.Len(t, cond.Values(), 2)

	_, err = query.NewCondition(query.OpGt)
	require.ErrorIs(t, err, query.ErrInvalidCriteria)

	_, err = query.NewCondition(query.Op("contains"), query.ValueOf("x"))
	require.ErrorIs(t, err, query.ErrUnknownOperator)
}
