package history

// Merge places the session buffer (most recent first) ahead of the history
// file (file order, reversed here) and removes duplicates.
func Merge(recent, file []string) []string {
	merged := make([]string, 0, len(recent)+len(file))
	merged = append(merged, recent...)
	merged = append(merged, Reverse(file)...)
	return Dedupe(merged)
}

// Dedupe keeps the first occurrence of each line without reordering.
func Dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}

// Reverse returns a reversed copy of lines.
func Reverse(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = line
	}
	return out
}
