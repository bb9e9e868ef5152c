package utils

import (
	"net/url"
	"strconv"
)

const DefaultLimit = 25

// ParsePagination reads limit/offset query parameters, falling back to the
// default page size. Malformed values are ignored.
func ParsePagination(values url.Values) (limit, offset int) {
	limit = DefaultLimit
	if n, err := strconv.Atoi(values.Get("limit")); err == nil && n > 0 {
		limit = n
	}
	if n, err := strconv.Atoi(values.Get("offset")); err == nil && n >= 0 {
		offset = n
	}
	return limit, offset
}
