package domain

import "strings"

// Normalize extracts commands from the given sources in order, windows the
// combined sequence to the last maxEntries raw commands, then deduplicates
// keeping the most recent occurrence of each distinct command. The result is
// newest-first and duplicate-free. maxEntries <= 0 disables the window.
//
// The window caps raw input before dedup, not result size.
func Normalize(sources []HistorySource, maxEntries int) []string {
	var cmds []string
	for _, src := range sources {
		for _, line := range src.Lines {
			if cmd, ok := extractCommand(src, line); ok {
				cmds = append(cmds, cmd)
			}
		}
	}

	if maxEntries > 0 && len(cmds) > maxEntries {
		cmds = cmds[len(cmds)-maxEntries:]
	}

	seen := make(map[string]bool, len(cmds))
	uniq := make([]string, 0, len(cmds))
	for i := len(cmds) - 1; i >= 0; i-- {
		if seen[cmds[i]] {
			continue
		}
		seen[cmds[i]] = true
		uniq = append(uniq, cmds[i])
	}
	return uniq
}

func extractCommand(src HistorySource, line string) (string, bool) {
	if src.Format == FormatKeyPrefixed {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, src.Marker) {
			return "", false
		}
		cmd := strings.TrimSpace(strings.TrimPrefix(trimmed, src.Marker))
		return cmd, cmd != ""
	}

	// zsh extended history: ": 1700000000:0;git status"
	if strings.HasPrefix(line, ": ") && strings.Contains(line, ";") {
		if idx := strings.Index(line, ";"); idx != -1 {
			line = line[idx+1:]
		}
	}
	line = strings.TrimSpace(line)
	return line, line != ""
}
