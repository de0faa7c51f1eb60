package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reflector/internal/match"
)

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Point", "point"},
		{"GridCell", "gridcell"},
		{"grid_cell", "gridcell"},
		{"grid-cell", "gridcell"},
		{"OrderID", "orderid"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, match.NormalizeIdent(tc.in))
		})
	}
}
