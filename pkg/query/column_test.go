package query_test

import (
	"testing"

	"github.com/fivetwenty-io/erpquery/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestColumnName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
	}{
		{"arpCode", "ARP_CODE"},
		{"masterName", "MASTER_NAME"},
		{"masterType", "MASTER_TYPE"},
		{"dateCreated", "DATE_CREATED"},
		{"revWithoutRouting", "REV_WITHOUT_ROUTING"},
		{"code", "CODE"},
		{"ficheNo", "FICHE_NO"},
		{"line2Total", "LINE2_TOTAL"},
		{"userID", "USER_ID"},
		{"ArpCode", "ARP_CODE"},
		{"ARP_CODE", "ARP_CODE"},
		{"", ""},
		{"şubeKodu", "ŞUBE_KODU"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, query.ColumnName(tt.name))
		})
	}
}

func TestColumnName_Idempotent(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"arpCode", "revWithoutRouting", "line2Total", "userID", "x"} {
		once := query.ColumnName(name)
		assert.Equal(t, once, query.ColumnName(once), name)
	}
}
