// Package debug writes the kanban client's diagnostic log.
//
// Nothing is written unless Init(true) is called, which happens when the
// binary is started with --debug. The log lives at ~/.kanban/debug.log and is
// truncated on every launch so a single session is easy to read.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the directory under the user's home holding the log.
	LogDirName = ".kanban"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *log.Logger
	logFile *os.File

	// getLogPath is swapped out by tests.
	getLogPath = defaultGetLogPath
)

// Init turns debug logging on or off for the process.
func Init(enable bool) error {
	if !enable {
		mu.Lock()
		defer mu.Unlock()
		closeLocked()
		enabled = false
		logger = log.New(io.Discard, "", 0)
		return nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}
	return InitAt(logPath)
}

// InitAt enables logging to the given file, creating parent directories and
// truncating any previous content.
func InitAt(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	//nolint:gosec // G301: log lives next to the user config
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	//nolint:gosec // G304: path comes from the user's home or a flag
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	closeLocked()
	logFile = f
	enabled = true
	logger = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	logger.Printf("=== kanban debug log started at %s ===", time.Now().Format(time.RFC3339))
	return nil
}

// Close flushes and closes the log file. Safe to call repeatedly.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log writes a message in the manner of fmt.Print.
func Log(v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled || logger == nil {
		return
	}
	logger.Print(v...)
}

// Logf writes a message in the manner of fmt.Printf.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled || logger == nil {
		return
	}
	logger.Printf(format, v...)
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Scope tags every line it writes with a component name, e.g. "[board]".
type Scope struct {
	name string
}

// For returns a Scope for the named component.
func For(component string) Scope {
	return Scope{name: component}
}

// Logf writes a tagged message in the manner of fmt.Printf.
func (s Scope) Logf(format string, v ...any) {
	if !Enabled() {
		return
	}
	Logf("[%s] "+format, append([]any{s.name}, v...)...)
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns where Init(true) writes the log.
func GetLogPath() (string, error) {
	return getLogPath()
}
