package post

import (
	"cmp"
	"slices"
)

// SortByLikes orders posts by likes, most liked first. Equal counts keep their relative order.
func SortByLikes(posts []SelectedPost) {
	slices.SortStableFunc(posts, func(a, b SelectedPost) int {
		return cmp.Compare(b.Likes, a.Likes)
	})
}
