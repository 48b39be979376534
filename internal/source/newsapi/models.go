package newsapi

// everythingResponse is the NewsAPI /v2/everything payload. Articles are
// not requested beyond the first page; only totalResults matters here.
type everythingResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Code         string `json:"code,omitempty"`
	Message      string `json:"message,omitempty"`
}
