package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gymflow/gymflow/pkg"
)

type SetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	Environment   string
	SentryEnabled bool
	SentryDSN     string
}

// Setup configures the global logrus logger. Logs go to a size-rotated
// file, stdout, or both, depending on the given params.
func Setup(params SetupParams) {
	log.SetLevel(logLevelFromString(params.LogLevel))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if params.SentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         params.SentryDSN,
			Environment: params.Environment,
		}); err != nil {
			log.Errorf("sentry init: %s", err)
		} else {
			log.AddHook(NewSentryHook([]log.Level{
				log.PanicLevel, log.FatalLevel, log.ErrorLevel,
			}))
		}
	}

	if params.LogFileName == "" {
		if params.LogToStdout {
			log.SetOutput(os.Stdout)
			return
		}
		log.SetOutput(io.Discard)
		return
	}

	logFileName := strings.TrimSpace(params.LogFileName)
	if !filepath.IsAbs(logFileName) {
		logFileName = filepath.Clean(logFileName)
	}

	rotatedFileWriter := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}

	if params.LogToStdout {
		log.SetOutput(pkg.NewCombinedWriter(rotatedFileWriter, os.Stdout))
		return
	}

	log.SetOutput(rotatedFileWriter)
}

func logLevelFromString(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.TraceLevel
	}
}
