package llm

import "fmt"

const summaryPrompt = `Summarize the following news article in brief and detail about 4 lines even if content is short:

%s

Summary:`

func buildSummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPrompt, text)
}
