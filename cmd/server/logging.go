package main

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("minisqld")

var stderrFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.7s} ▶ %{message}%{color:reset}`,
)

// setupLogging configures the stderr backend. The MINISQL_LOG_LEVEL
// environment variable overrides the default level.
func setupLogging(defaultLevel logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetFormatter(stderrFormat)

	leveled := logging.AddModuleLevel(backend)
	switch os.Getenv("MINISQL_LOG_LEVEL") {
	case "CRITICAL":
		leveled.SetLevel(logging.CRITICAL, "")
	case "ERROR":
		leveled.SetLevel(logging.ERROR, "")
	case "WARNING":
		leveled.SetLevel(logging.WARNING, "")
	case "NOTICE":
		leveled.SetLevel(logging.NOTICE, "")
	case "INFO":
		leveled.SetLevel(logging.INFO, "")
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, "")
	default:
		leveled.SetLevel(defaultLevel, "")
	}

	logging.SetBackend(leveled)
}
