package models

// Summary holds the display-only statistics reported after a successful
// conversion. Nothing here is persisted.
type Summary struct {
	Records           int
	UniqueUsers       int
	FirstDay          string
	LastDay           string
	TotalInteractions int
	TotalGenerations  int
	TotalLOCAdded     int
	OutputPath        string
}
