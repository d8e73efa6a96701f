package debug

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "GRID_DEBUG"

var (
	logFile *os.File
	checked bool // GRID_DEBUG has been consulted
	mu      sync.Mutex
)

// Init starts debug logging to the file at path, creating its directory if
// needed. Any previously open log is closed first.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return errors.New("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Close closes the debug log file. Logging stays off afterwards until the
// next Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = true
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether Log writes anywhere. Callers can use it to skip
// building expensive messages.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabledLocked()
}

func enabledLocked() bool {
	if !checked {
		checked = true
		if path := os.Getenv(EnvVar); path != "" {
			// A bad path leaves logging off rather than failing layout.
			_ = initLocked(path)
		}
	}
	return logFile != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabledLocked() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
