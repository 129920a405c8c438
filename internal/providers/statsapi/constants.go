package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	// errorBodyLimit caps how much of a failed response is echoed into errors.
	errorBodyLimit = 512
)
