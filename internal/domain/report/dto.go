package report

// DailyExport is a rendered attendance spreadsheet ready to be served as a
// download.
type DailyExport struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Summary aggregates a reconciled day view for the summary sheet.
type Summary struct {
	Date           string
	GeneratedAt    string
	TotalEmployees int
	StatusCounts   map[string]int
	PresentPercent float64
}
