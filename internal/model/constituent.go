package model

// Constituent is one company belonging to a tracked index.
type Constituent struct {
	Symbol string // canonical market symbol, suffix included where needed
	Name   string // display name from the listing page
	Index  string // parent index name, e.g. "CAC 40"
}
