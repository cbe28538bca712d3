package postdesk

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "All"

// FilterPosts derives the visible subset of posts: a case-insensitive
// substring match of search against the title only, exact category and
// priority matches unless the filter is the All sentinel (or empty), all
// three conjunctive. The result is ordered by publish date descending;
// ties keep their input order.
func FilterPosts(posts []BlogPost, search, category, priority string) []BlogPost {
	needle := strings.ToLower(strings.TrimSpace(search))
	var out []BlogPost
	for _, p := range posts {
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if category != "" && category != FilterAll && p.Category != category {
			continue
		}
		if priority != "" && priority != FilterAll && p.Priority != priority {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishDate.After(out[j].PublishDate)
	})
	return out
}
