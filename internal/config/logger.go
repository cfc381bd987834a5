package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func InitLogger() {
	Log = logrus.New()

	// Set formatter to JSON
	Log.SetFormatter(&logrus.JSONFormatter{})

	// Set output to stdout (default)
	Log.SetOutput(os.Stdout)

	Log.SetLevel(logrus.InfoLevel)
}

func init() {
	// Packages log through config.Log unconditionally; make sure it exists
	// even when main never calls InitLogger (tests).
	InitLogger()
}
