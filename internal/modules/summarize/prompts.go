package summarize

const (
	summarySystemPrompt = `You are a helpful assistant that summarizes news articles.
Summarize the provided text in 75-100 words. After the summary, output a single
line starting with "Keywords:" followed by 3-5 comma-separated keywords.
Do not add notes, disclaimers, or commentary about the text or the summary.`

	promptInputLimit = 6000
)

func buildSummaryPrompt(text string) string {
	return "Summarize the following text:\n" + truncateText(text, promptInputLimit)
}

func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
