package directory

import (
	"sort"
	"strings"

	"bcpartners_backend/internal/models"
)

// TagAll is the selection that disables the tag filter.
const TagAll = "All"

// Filter narrows the full listing set by an optional free-text query and an
// optional service tag. A listing must satisfy both filters to appear.
// The input slice is never mutated; the result preserves input order.
func Filter(listings []models.Listing, query, tag string) []models.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.Listing, 0, len(listings))

	for _, l := range listings {
		if !matchesTag(&l, tag) {
			continue
		}
		if !matchesQuery(&l, query) {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

// matchesTag checks service-tag membership. Empty selection or "All"
// (case-insensitive) matches every listing.
func matchesTag(l *models.Listing, tag string) bool {
	if tag == "" || strings.EqualFold(tag, TagAll) {
		return true
	}
	for _, s := range l.ServiceList() {
		if s == tag {
			return true
		}
	}
	return false
}

// matchesQuery does a case-insensitive substring match against name,
// description and type label.
func matchesQuery(l *models.Listing, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Description), query) ||
		strings.Contains(strings.ToLower(l.Type), query)
}

// DeriveTags collects the set union of every listing's service tags,
// deduplicated and sorted ascending. The result depends only on the set of
// listings, not on their order.
func DeriveTags(listings []models.Listing) []string {
	seen := make(map[string]struct{})
	for _, l := range listings {
		for _, s := range l.ServiceList() {
			seen[s] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
