package questionbank

import "strings"

// InferCategories derives category tags from a question id by substring
// match, e.g. "interest_3" -> [interest] and "real_world_1" -> [real_world].
// It is the fallback for banks loaded without explicit tags and for answers
// whose question id is not in the bank.
func InferCategories(id string) []Category {
	var out []Category
	for _, c := range AllCategories() {
		if strings.Contains(id, string(c)) {
			out = append(out, c)
		}
	}
	return out
}
