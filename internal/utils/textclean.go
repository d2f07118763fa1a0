package utils

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")
	emphasisRe  = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
)

// CleanModelText reduces decorated AI output to a bare answer line. Models
// asked for "only a specialty name" still occasionally wrap it in code
// fences, bold markers, or a trailing sentence; this keeps the first
// non-empty line with markdown and trailing punctuation stripped.
func CleanModelText(input string) string {
	text := strings.TrimSpace(input)
	if text == "" {
		return ""
	}

	// Unwrap a code fence if the whole answer sits inside one
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		text = matches[1]
	}

	// Keep the first non-empty line
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		text = line
		break
	}

	// Strip markdown emphasis markers
	text = emphasisRe.ReplaceAllString(text, "$1")

	// Drop a trailing sentence terminator, but keep internal punctuation
	// ("Ear, Nose and Throat" must survive)
	text = strings.TrimRight(text, ".!:;")

	return strings.TrimSpace(text)
}
