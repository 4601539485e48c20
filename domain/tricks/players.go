package tricks

import "strings"

// NormalizePlayerNames splits a comma separated list, trims and upper-cases
// every name, and drops empty and repeated names. The first occurrence of a
// name fixes its position.
func NormalizePlayerNames(raw string) []string {
	var names []string
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
