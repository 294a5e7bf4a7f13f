package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultMaxBytes matches the default HTTP upload limit.
const DefaultMaxBytes int64 = 10 << 20

var ErrFileTooLarge = errors.New("file exceeds size limit")

// LocalSource reads import spreadsheets from disk. Relative paths resolve
// against BaseDir.
type LocalSource struct {
	BaseDir  string
	MaxBytes int64
}

func NewLocalSource(baseDir string, maxBytes int64) *LocalSource {
	if baseDir == "" {
		baseDir = "."
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &LocalSource{BaseDir: baseDir, MaxBytes: maxBytes}
}

func (s *LocalSource) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.BaseDir, name)
}

func (s *LocalSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Resolve(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open file %s: is a directory", path)
	}
	if info.Size() > s.MaxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, info.Size(), s.MaxBytes)
	}

	content, err := io.ReadAll(io.LimitReader(f, s.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	if int64(len(content)) > s.MaxBytes {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}
	return content, nil
}
