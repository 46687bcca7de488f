package domain

// ImportRow is one vocabulary row read from a spreadsheet.
type ImportRow struct {
	Line       int
	Domain     string
	Word       string
	Definition string
	Examples   []string
	Language   string
}
