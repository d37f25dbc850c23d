package tenderly

import (
	"go.uber.org/zap"
)

// Logger is the minimal logging surface the client needs. It is satisfied
// by zap's SugaredLogger and by most leveled loggers.
//
// The client only ever logs the request method and path; credentials,
// headers and bodies are never logged.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
}

// defaultLogger returns the logger used when the caller does not supply
// one via WithLogger.
func defaultLogger() Logger {
	return zap.Must(zap.NewProduction()).Sugar()
}
