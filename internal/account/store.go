package account

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abookhq/abook/internal/filex"
	"github.com/abookhq/abook/internal/logging"
)

// Store is the durable, line-oriented directory of account records.
type Store interface {
	// ReadAll returns every non-ignored line of the file in file order.
	// A missing file yields an empty result, not an error.
	ReadAll(ctx context.Context) ([]string, error)

	// WriteAll atomically replaces the file's contents with the given lines.
	WriteAll(ctx context.Context, lines []string) error
}

// FileStore implements Store on a single UTF-8 text file with LF endings.
// Writes go through a temporary sibling file renamed over the target, and
// parent directories are created on demand.
type FileStore struct {
	path string
	log  logging.Logger

	// last observed file state, used to detect external writers
	knownMtime time.Time
	knownSize  int64
	known      bool
}

func NewFileStore(path string, log logging.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) ReadAll(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	s.rememberState()

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if IsIgnoredLine(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *FileStore) WriteAll(ctx context.Context, lines []string) error {
	s.warnIfChangedExternally(ctx)

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if err := filex.WriteFileAtomic(s.path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.rememberState()
	return nil
}

func (s *FileStore) rememberState() {
	info, err := os.Stat(s.path)
	if err != nil {
		s.known = false
		return
	}
	s.knownMtime = info.ModTime()
	s.knownSize = info.Size()
	s.known = true
}

// warnIfChangedExternally logs when the file no longer matches the state we
// last saw. The store is not a database; we log and proceed.
func (s *FileStore) warnIfChangedExternally(ctx context.Context) {
	if !s.known {
		return
	}
	info, err := os.Stat(s.path)
	if err != nil {
		s.log.Warn(ctx, "accounts file disappeared since last access, rewriting", "path", s.path)
		return
	}
	if !info.ModTime().Equal(s.knownMtime) || info.Size() != s.knownSize {
		s.log.Warn(ctx, "accounts file changed on disk outside this process, overwriting", "path", s.path)
	}
}
