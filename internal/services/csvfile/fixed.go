package csvfile

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

// Fixed reads and writes one file in place, tasks.csv by default.
type Fixed struct {
	path   string
	logger *slog.Logger
}

// NewFixed creates a fixed-file gateway for the given path.
func NewFixed(path string, logger *slog.Logger) *Fixed {
	return &Fixed{path: path, logger: logger}
}

// Load reads the file. An absent file is domain.ErrNotFound, not a
// failure: a fresh working directory simply has no tasks yet.
func (g *Fixed) Load() (string, string, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		g.logger.Debug("task file not found", "path", g.path)
		return "", g.path, domain.ErrNotFound
	}
	if err != nil {
		return "", g.path, &domain.PersistError{Op: "load", Path: g.path, Err: err}
	}
	g.logger.Debug("task file loaded", "path", g.path, "bytes", len(data))
	return string(data), g.path, nil
}

// Save overwrites the file with the whole encoded text.
func (g *Fixed) Save(text string) (string, error) {
	if err := os.WriteFile(g.path, []byte(text), 0644); err != nil {
		return g.path, &domain.PersistError{Op: "save", Path: g.path, Err: err}
	}
	g.logger.Debug("task file saved", "path", g.path, "bytes", len(text))
	return g.path, nil
}
