package models

// NewsItem is one headline from a news feed. PublishedAt is kept as the
// feed's raw text.
type NewsItem struct {
	Title       string
	Link        string
	PublishedAt string
}
