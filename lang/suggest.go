package lang

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// suggestLimit caps the number of candidate keys attached to a missing
// name error.
const suggestLimit = 3

// suggestKeys fuzzy-matches name against the keys of kv and returns the
// closest candidates as a comma-separated string, or "" when nothing
// resembles name.
func suggestKeys(name string, kv Map) string {
	matches := fuzzy.Find(name, sortedKeys(kv))
	if len(matches) > suggestLimit {
		matches = matches[:suggestLimit]
	}

	found := make([]string, len(matches))
	for i, m := range matches {
		found[i] = m.Str
	}

	return strings.Join(found, ", ")
}
