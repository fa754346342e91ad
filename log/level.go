package log

import (
	"io"
	"os"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

func init() {
	// Filtering happens per module, let everything through logrus.
	logrus.SetLevel(logrus.DebugLevel)
}

// SetOutput redirects all log output to w. Colors are only kept for the
// standard streams.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: w != io.Writer(os.Stderr) && w != io.Writer(os.Stdout),
	})
}
