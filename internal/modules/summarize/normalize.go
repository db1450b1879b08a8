package summarize

import (
	"regexp"
	"strings"
)

const (
	summaryMinWords = 50
	summaryMaxWords = 100
	keywordsMarker  = "Keywords:"
)

// boilerplatePatterns enumerates model disclaimer sentences that are never
// part of the actual summary. Each match is removed wholesale; extend the
// list to handle new disclaimer shapes.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bNote:[^.?!]*[.?!]`),
	regexp.MustCompile(`(?i)\bThe provided text is brief[^.?!]*[.?!]`),
	regexp.MustCompile(`(?i)\bI've generated[^.?!]*[.?!]`),
	regexp.MustCompile(`(?i)\bIf you provide[^.?!]*[.?!]`),
	regexp.MustCompile(`(?i)\bThis is a[^.?!]*\bsummary[.?!]`),
	regexp.MustCompile(`(?i)\bBased on[^.?!]*\bknowledge[^.?!]*[.?!]`),
}

var (
	blankLinesRe   = regexp.MustCompile(`\n[ \t]*\n+`)
	doubleSpacesRe = regexp.MustCompile(`[ \t]{2,}`)
)

// Result is a cleaned summarization outcome.
type Result struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	WordCount int      `json:"word_count"`
}

// Normalize turns a raw model completion into a bounded summary, a keyword
// list and a display title.
func Normalize(raw string) Result {
	cleaned := stripBoilerplate(raw)

	summaryPart, keywordPart, _ := strings.Cut(cleaned, keywordsMarker)
	summary := enforceLength(strings.TrimSpace(summaryPart))
	keywords := parseKeywords(keywordPart)

	return Result{
		Title:     SynthesizeTitle(keywords),
		Summary:   summary,
		Keywords:  keywords,
		WordCount: len(strings.Fields(summary)),
	}
}

// stripBoilerplate removes disclaimer sentences and collapses the gaps they
// leave behind. Text without any disclaimer passes through untouched apart
// from trimming.
func stripBoilerplate(s string) string {
	cleaned := s
	for _, p := range boilerplatePatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	if cleaned != s {
		cleaned = blankLinesRe.ReplaceAllString(cleaned, "\n")
		cleaned = doubleSpacesRe.ReplaceAllString(cleaned, " ")
	}
	return strings.TrimSpace(cleaned)
}

// enforceLength keeps the summary within the [summaryMinWords, summaryMaxWords]
// word band. Short summaries are padded best-effort, long ones truncated.
func enforceLength(summary string) string {
	words := strings.Fields(summary)
	switch {
	case len(words) == 0:
		return summary
	case len(words) < summaryMinWords:
		return padSummary(summary)
	case len(words) > summaryMaxWords:
		return truncateSummary(words)
	}
	return summary
}

// padSummary appends the first two sentence-fragments back onto the summary.
// Input without any period is returned unchanged, which keeps the step
// idempotent for such input.
func padSummary(summary string) string {
	if !strings.Contains(summary, ".") {
		return summary
	}

	fragments := make([]string, 0, 2)
	for _, f := range strings.Split(summary, ".") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		fragments = append(fragments, f)
		if len(fragments) == 2 {
			break
		}
	}
	if len(fragments) == 0 {
		return summary
	}
	return strings.TrimSpace(summary) + " " + strings.Join(fragments, ". ") + "."
}

// truncateSummary cuts to the first summaryMaxWords words, then backtracks to
// a sentence boundary if one falls within the last 20% of the cut text.
func truncateSummary(words []string) string {
	truncated := strings.Join(words[:summaryMaxWords], " ")
	if idx := strings.LastIndex(truncated, "."); idx >= len(truncated)*4/5 {
		return truncated[:idx+1]
	}
	return truncated
}

// parseKeywords splits the keyword part on commas, preserving order.
func parseKeywords(part string) []string {
	keywords := make([]string, 0, 5)
	for _, k := range strings.Split(part, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		keywords = append(keywords, k)
	}
	return keywords
}
