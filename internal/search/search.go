// Package search backs the admin panel's search box. Meilisearch serves
// queries when it is reachable; otherwise the store's ILIKE queries answer
// them directly.
package search

type ResultType string

const (
	ResultDoctor  ResultType = "doctor"
	ResultService ResultType = "service"
	ResultPodcast ResultType = "podcast"
)

type Result struct {
	Type    ResultType `json:"type"`
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Snippet string     `json:"snippet"`
}

type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Record is the flattened shape pushed into the search indexes.
type Record struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
