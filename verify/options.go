package verify

import "github.com/hashicorp/go-hclog"

type options struct {
	workers int
	logger  hclog.Logger
}

func defaultOptions() options {
	return options{workers: 1, logger: hclog.NewNullLogger()}
}

// Option configures a Database.
type Option func(*options)

// WithWorkers bounds the number of statements verified concurrently.
// It panics if n is not positive: a non-positive worker count cannot
// make forward progress, so it is a caller bug, not a runtime condition.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("verify: WithWorkers requires n > 0")
	}
	return func(o *options) { o.workers = n }
}

// WithLogger attaches a structured logger used to report one debug-level
// line per verified statement. The default is a no-op logger.
func WithLogger(l hclog.Logger) Option {
	if l == nil {
		panic("verify: WithLogger requires a non-nil logger")
	}
	return func(o *options) { o.logger = l }
}
