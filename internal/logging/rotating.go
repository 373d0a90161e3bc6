package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/valleykit/modshell/internal/constants"
)

// RotatingFile is an io.Writer backed by lumberjack that can be toggled at
// runtime from the settings dialog. Writes while disabled are dropped.
type RotatingFile struct {
	mu      sync.RWMutex
	lj      *lumberjack.Logger
	enabled bool
}

// OpenRotatingFile prepares dir/name for rotating writes. The file itself is
// created lazily on the first write.
func OpenRotatingFile(dir, name string) (*RotatingFile, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &RotatingFile{
		lj: &lumberjack.Logger{
			Filename:   filepath.Join(dir, name),
			MaxSize:    constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAge:     constants.LogMaxAgeDays,
			Compress:   true,
		},
		enabled: true,
	}, nil
}

// Write implements io.Writer.
func (f *RotatingFile) Write(p []byte) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.lj == nil || !f.enabled {
		return len(p), nil
	}
	return f.lj.Write(p)
}

// SetEnabled turns file output on or off.
func (f *RotatingFile) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = enabled
}

// Enabled reports whether writes reach the file.
func (f *RotatingFile) Enabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.enabled && f.lj != nil
}

// Path returns the current log file path, or "" once closed.
func (f *RotatingFile) Path() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.lj == nil {
		return ""
	}
	return f.lj.Filename
}

// Close flushes and closes the file. Later writes are dropped.
func (f *RotatingFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lj == nil {
		return nil
	}
	err := f.lj.Close()
	f.lj = nil
	f.enabled = false
	return err
}

var _ io.WriteCloser = (*RotatingFile)(nil)
