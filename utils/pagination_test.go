package utils

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, 0},
		{"explicit values", "limit=10&offset=40", 10, 40},
		{"zero limit falls back", "limit=0", DefaultLimit, 0},
		{"negative values ignored", "limit=-5&offset=-1", DefaultLimit, 0},
		{"garbage ignored", "limit=ten&offset=many", DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			limit, offset := ParsePagination(values)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("ParsePagination(%q) = (%d, %d), want (%d, %d)",
					tt.query, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
