package summarize

import "strings"

const (
	defaultTitle      = "Untitled"
	titleKeywordCount = 4
	titleSeparator    = " • "
	titleMaxLen       = 50
)

// SynthesizeTitle derives a short display title from the first keywords.
func SynthesizeTitle(keywords []string) string {
	if len(keywords) == 0 {
		return defaultTitle
	}

	take := keywords
	if len(take) > titleKeywordCount {
		take = take[:titleKeywordCount]
	}

	title := strings.Join(take, titleSeparator)
	if runes := []rune(title); len(runes) > titleMaxLen {
		title = string(runes[:titleMaxLen]) + "..."
	}
	return title
}
