package docs

import (
	"strconv"
	"strings"
)

// Cache keys live in one place so readers and writers cannot drift apart.

const searchKeyNamespace = "docs_search"

// searchKey identifies one search query shape. Absent filters contribute no
// segment, and segment order is fixed (type, search, page, limit) so the same
// logical query always maps to the same key.
func searchKey(productType, search string, page, limit int) string {
	parts := []string{searchKeyNamespace}
	if productType != "" {
		parts = append(parts, "type:"+productType)
	}
	if search != "" {
		parts = append(parts, "search:"+search)
	}
	parts = append(parts, "page:"+strconv.Itoa(page), "limit:"+strconv.Itoa(limit))
	return strings.Join(parts, ":")
}

// docKey identifies one point lookup by document id.
func docKey(id string) string { return "doc:" + id }
