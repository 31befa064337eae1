package grpc

import "time"

const (
	contextTimeLimit = 2 * time.Second
	// Settlement retries with backoff behind this call.
	checkoutTimeLimit = 30 * time.Second
)
