// Package logger provides the module-wide structured logger.
package logger

import "go.uber.org/zap"

// Log is the package-level logger. It discards everything until Init installs
// a real logger, so library users who never call Init pay nothing.
var Log = zap.NewNop()

// Init replaces the no-op logger. Pass debug=true for human-readable
// development output.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}
