package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log is a no-op logger until Initialize is called.
var Log = zap.NewNop()

var (
	String   = zap.String
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Stringer = zap.Stringer
	Error    = zap.Error
)

func Initialize() error {
	cfg := zap.NewProductionConfig()

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("error building logger: %w", err)
	}

	Log = l

	return nil
}
