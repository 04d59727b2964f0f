package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sablehq/deckhand/internal/sentry"
)

var logFileName = filepath.Join(os.TempDir(), "deckhand.log")

var (
	// InfoLog logs informational messages.
	InfoLog *log.Logger
	// WarningLog logs recoverable problems.
	WarningLog *log.Logger
	// ErrorLog logs failures.
	ErrorLog *log.Logger
)

var globalLogFile *os.File

// Initialize opens the log file and wires the package loggers to it. Every
// process should call this at startup and defer Close. If the file cannot
// be opened, logging is discarded rather than failing startup. When
// telemetry is enabled, warnings and errors are also forwarded to Sentry.
func Initialize(telemetry ...bool) {
	f, err := os.OpenFile(logFileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		f = nil
	}

	var w io.Writer = io.Discard
	if f != nil {
		w = f
	}

	warnW, errW := w, w
	if len(telemetry) > 0 && telemetry[0] {
		warnW = sentry.NewWriter(w, sentry.LevelWarning)
		errW = sentry.NewWriter(w, sentry.LevelError)
	}

	InfoLog = log.New(w, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(warnW, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(errW, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	globalLogFile = f
}

// Close flushes and closes the log file. If nothing was written, the empty
// file is removed.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	if stat, err := os.Stat(logFileName); err == nil && stat.Size() == 0 {
		_ = os.Remove(logFileName)
	} else if err == nil {
		fmt.Printf("wrote log file to %s\n", logFileName)
	}
	globalLogFile = nil
}
