package models

// SearchRequest is the incoming body of POST /api/search.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int64  `json:"max_results,omitempty"`
	Order      string `json:"order,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Channel    bool   `json:"channel,omitempty"`
}

// Filters converts the request into normalized search filters.
func (r *SearchRequest) Filters() SearchFilters {
	return SearchFilters{
		MaxResults:     r.MaxResults,
		Order:          r.Order,
		Duration:       r.Duration,
		ScopeToChannel: r.Channel,
	}.WithDefaults()
}

// SearchResponse is the body returned by POST /api/search.
type SearchResponse struct {
	Videos        []VideoSummary `json:"videos"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

// DownloadRequest is the incoming body of POST /api/download.
type DownloadRequest struct {
	IDs   []string `json:"ids"`
	Query string   `json:"query,omitempty"`
}

// KeyRequest carries a new API key for POST /api/key.
type KeyRequest struct {
	Key string `json:"key"`
}

// KeyResponse reports whether an API key is configured. The key itself is
// never echoed back.
type KeyResponse struct {
	Configured bool `json:"configured"`
}
