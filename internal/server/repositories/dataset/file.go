package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads the dataset from a file under the data directory.
type FileSource struct {
	path string
}

func NewFileSource(dataDir, name string) *FileSource {
	return &FileSource{path: filepath.Join(dataDir, name)}
}

func (s *FileSource) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
	}
	return data, nil
}
