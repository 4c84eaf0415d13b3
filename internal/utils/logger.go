package utils

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the shared application logger. InitLogger must run before
// the first request is served.
var Logger = logrus.New()

// appFieldHook tags every entry with the application name so that logs
// from several binaries can be told apart once aggregated.
type appFieldHook struct {
	app string
}

func (h *appFieldHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *appFieldHook) Fire(entry *logrus.Entry) error {
	entry.Data["app"] = h.app
	return nil
}

// InitLogger configures the shared logger from the environment:
// LOG_LEVEL picks the logrus level (info when unset or unknown) and
// LOG_FORMAT=json switches to the JSON formatter for aggregated
// deployments.
func InitLogger(appName string) {
	Logger.SetOutput(os.Stdout)

	raw := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if raw == "" {
		raw = "info"
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		Logger.Warnf("LOG_LEVEL %q inconnu, niveau info utilisé", raw)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	Logger.AddHook(&appFieldHook{app: appName})
}
