package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterAndTruncate returns the items whose searchable text contains query as
// a case-sensitive substring, keeping source order and at most maxVisible
// entries. An empty query keeps everything. The result is never nil.
func FilterAndTruncate[T any](items []T, text func(T) string, query string, maxVisible int) []T {
	if maxVisible <= 0 {
		return []T{}
	}
	visible := make([]T, 0, min(len(items), maxVisible))
	for _, item := range items {
		if len(visible) == maxVisible {
			break
		}
		if query != "" && !strings.Contains(text(item), query) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// ClosestMatch returns the candidate that best fuzzy-matches query, ignoring
// case. It is only a hint for an empty result and never filters anything.
func ClosestMatch(candidates []string, query string) (string, bool) {
	if query == "" || len(candidates) == 0 {
		return "", false
	}
	ranks := fuzzy.RankFindFold(query, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Stable(ranks)
	return ranks[0].Target, true
}

// PaneCapacity returns how many rows pane can show in a terminal of the given
// height: two rows go to the status bar and spacer, the panes split the rest
// (unless one is hidden) and each loses two rows to its border.
func PaneCapacity(height int, hideOther bool, pane, active Pane) int {
	if hideOther && pane != active {
		return 0
	}
	available := height - 2
	if available <= 0 {
		return 0
	}
	paneHeight := available
	if !hideOther {
		paneHeight = available / 2
	}
	return paneHeight - 2
}

// PaneHeight returns the outer height of a pane, border included.
func PaneHeight(height int, hideOther bool) int {
	available := height - 2
	if available <= 0 {
		return 0
	}
	if hideOther {
		return available
	}
	return available / 2
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
