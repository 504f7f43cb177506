package feed

import (
	"cmp"

	"neighbornet/internal/core"
)

func byRecent(a, b core.PostRow) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

// byPinnedThenRecent puts every pinned post before every unpinned one.
func byPinnedThenRecent(a, b core.PostRow) int {
	if a.IsPinned != b.IsPinned {
		if a.IsPinned {
			return -1
		}
		return 1
	}
	return byRecent(a, b)
}

// byPriorityThenRecent puts urgent before high.
func byPriorityThenRecent(a, b core.PostRow) int {
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}
	return byRecent(a, b)
}
