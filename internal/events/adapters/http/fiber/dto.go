package fiber

// CreateEventRequest is the payload sent by the tracking script.
// @Description Pageview / custom event DTO
type CreateEventRequest struct {
	ProjectID   string  `json:"pid" example:"aUn1quEid-3g"`
	EventName   *string `json:"ev,omitempty" example:"signup"`
	Page        *string `json:"pg,omitempty" example:"/pricing"`
	Locale      *string `json:"lc,omitempty" example:"en-US"`
	Referrer    *string `json:"ref,omitempty" example:"https://news.ycombinator.com"`
	ScreenWidth *int    `json:"sw,omitempty" example:"1440"`
	Source      *string `json:"so,omitempty" example:"newsletter"`
	Medium      *string `json:"me,omitempty" example:"email"`
	Campaign    *string `json:"ca,omitempty" example:"launch"`
	Language    *string `json:"lt,omitempty" example:"en"`
	Timezone    *string `json:"tz,omitempty" example:"Europe/Kiev"`
}

type CreateEventResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created int `json:"created"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
