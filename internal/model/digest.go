package model

const (
	OutcomePending = "pending"
	OutcomePreview = "preview"
	OutcomeSummary = "summary"
	OutcomeError   = "error"
)

// DigestItem is what the page shows for one fetched article.
type DigestItem struct {
	Index    int
	Title    string
	Source   string
	URL      string
	Text     string
	Outcome  string
	Summary  string
	ErrorMsg string
}
