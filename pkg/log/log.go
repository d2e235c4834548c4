// Package log creates the logrus entry shared by every command.
package log

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{}
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "gha-cli",
		"env":     runtime.GOOS + "/" + runtime.GOARCH,
	})
}

// SetLevel changes the level of the logger behind logE.
// An empty level keeps the current one and an invalid level is reported as a warning.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Warn("the log level is invalid")
		return
	}
	logE.Logger.Level = lvl
}
