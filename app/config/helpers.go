package config

// TermCount returns the number of keyword terms across all groups, duplicates included
func (r *Rules) TermCount() int {
	count := 0
	for _, group := range r.Keywords {
		count += len(group.Terms)
	}
	return count
}
