package llm

import "strings"

// extractJSON pulls a JSON payload out of an LLM response that may wrap it
// in markdown fences or prose. Returns the input unchanged when nothing
// JSON-shaped is found.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		if idx := strings.Index(s, fence); idx != -1 {
			start := idx + len(fence)
			for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
				start++
			}
			if end := strings.Index(s[start:], "```"); end != -1 {
				return strings.TrimRight(s[start:start+end], "\r\n")
			}
		}
	}

	// Raw JSON embedded in prose: find the first balanced object or array.
	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[i : j+1]
				}
			}
		}
	}

	return s
}
