package utils

import "github.com/sirupsen/logrus"

// Logger is the shared logger for command-line entry points.
var Logger = logrus.New()

func SetVerbose() {
	Logger.SetLevel(logrus.DebugLevel)
}
