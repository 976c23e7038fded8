package swapi

// FilmsResponse is the body returned by GET /films/.
type FilmsResponse struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []Film `json:"results"`
}

// Film is a single raw entry of the films collection.
type Film struct {
	EpisodeID    int    `json:"episode_id"`
	Title        string `json:"title"`
	OpeningCrawl string `json:"opening_crawl"`
	ReleaseDate  string `json:"release_date"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	URL          string `json:"url"`
}
