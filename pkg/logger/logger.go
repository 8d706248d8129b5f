package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if os.Getenv("ENVIRONMENT") == "development" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// WithField returns an entry carrying a structured field, for call sites
// that want more than the printf helpers.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}
