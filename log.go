package funcplot

import (
	"github.com/vdobler/funcplot/internal/logging"
	"go.uber.org/zap"
)

// SetLogger configures the logger of funcplot and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Debug: per-expression sample counts, view changes
//   - Info:  sampling finished
//   - Warn:  a plot adopted a failed sampling job
func SetLogger(l *zap.Logger) {
	logging.SetLogger(l)
}
