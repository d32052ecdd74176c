package espn

import "time"

const (
	defaultBaseURL     = "https://site.api.espn.com"
	defaultHTTPTimeout = 10 * time.Second
)
