// Package logging holds the process-wide logger shared by funcplot and its
// sub-packages.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger replaces the logger. A nil logger restores the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
