package nhl

import "time"

const (
	defaultBaseURL     = "https://api-web.nhle.com"
	defaultHTTPTimeout = 10 * time.Second

	schedulePath = "/v1/schedule/now"
)
