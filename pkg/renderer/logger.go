package renderer

import (
	"log"

	"github.com/qiujiangkun/raytracer/pkg/core"
)

// DefaultLogger implements core.Logger with the standard logger
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
