package gdelt

// timelineResponse is the GDELT DOC API timeline-mode payload.
// Format: {"timeline": [{"series": "...", "data": [{"date": "...", "value": N}]}]}
type timelineResponse struct {
	Timeline []timelineSeries `json:"timeline"`
}

type timelineSeries struct {
	Series string          `json:"series"`
	Data   []timelinePoint `json:"data"`
}

type timelinePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
