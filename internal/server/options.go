package server

import (
	"github.com/bft-labs/brayton/pkg/cycle"
	"github.com/bft-labs/brayton/pkg/log"
)

// Option configures optional behavior of a Server.
type Option func(*options)

type options struct {
	gas    cycle.Gas
	logger log.Logger
}

func defaultOptions() options {
	return options{
		gas:    cycle.Air,
		logger: log.NewNoopLogger(),
	}
}

// WithGas sets the gas used when a request does not override it.
func WithGas(gas cycle.Gas) Option {
	return func(o *options) {
		o.gas = gas
	}
}

// WithLogger sets the logger for access and error logs.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
