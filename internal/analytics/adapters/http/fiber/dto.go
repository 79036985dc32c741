package fiber

type ChartResponse struct {
	X      []string `json:"x" example:"2024-01-01 00:00:00"`
	Visits []int    `json:"visits"`
}

// AnalyticsResponse keeps the short dimension keys (pg, lc, ref, ...) as the
// outer keys of params.
type AnalyticsResponse struct {
	Params map[string]map[string]int `json:"params"`
	Chart  ChartResponse             `json:"chart"`
}

type BirdseyeResponse struct {
	ThisWeek   int64   `json:"thisWeek" example:"120"`
	LastWeek   int64   `json:"lastWeek" example:"80"`
	PercChange float64 `json:"percChange" example:"50"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"the provided Project ID (pid) is incorrect"`
}
