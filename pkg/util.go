package pkg

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const LogTimeFormat = "2006-01-02 15:04:05"

// InitLog returns a logger at the given level writing to dest, or to stderr
// when dest is empty.
func InitLog(dest, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: LogTimeFormat})

	if dest != "" {
		f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}
		log.SetOutput(f)
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true, TimestampFormat: LogTimeFormat})
	}

	return log, nil
}

// Quiet silences a logger that writes to the terminal.
func Quiet(log *logrus.Logger) {
	if log.Out == os.Stderr {
		log.SetOutput(io.Discard)
	}
}
