// Package log provides the logging abstraction used by brayton components.
//
// Library code depends only on the Logger interface. A zerolog adapter is
// provided for applications and a no-op logger for tests:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("cycle solved", log.Float64("efficiency", res.Efficiency))
//
// Any other logging library can be plugged in by implementing Logger.
package log
