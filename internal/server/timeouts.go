package server

import "time"

// A /next request can wait on the slowest upstream fetch, so the write
// timeout sits above the stats API client timeout.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 20 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
