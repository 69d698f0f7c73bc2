package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FS stores every run as a JSON file under baseURL.
type FS struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ Service = (*FS)(nil)

func (s *FS) Save(ctx context.Context, run *Run) error {
	if run == nil {
		return ErrNilRun
	}
	if run.ID == "" {
		return ErrInvalidID
	}
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.runURL(run.ID)
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save run to %s: %w", location, err)
	}
	return nil
}

func (s *FS) Load(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	location := s.runURL(id)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check if run exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}
	run := &Run{}
	if err = json.Unmarshal(data, run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run %s: %w", id, err)
	}
	return run, nil
}

// List returns all runs, oldest first. Unreadable files are logged and skipped.
func (s *FS) List(ctx context.Context) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	var runs []*Run
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			log.Printf("failed to read run %s: %v", object.URL(), err)
			continue
		}
		run := &Run{}
		if err := json.Unmarshal(data, run); err != nil {
			log.Printf("failed to unmarshal run %s: %v", object.URL(), err)
			continue
		}
		runs = append(runs, run)
	}
	sortRuns(runs)
	return runs, nil
}

func (s *FS) runURL(id string) string {
	return url.Join(s.baseURL, id+".json")
}

// NewFS creates a file store rooted at baseURL, creating the folder when missing.
func NewFS(baseURL string) (*FS, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url cannot be empty")
	}
	fs := afs.New()
	ctx := context.Background()
	baseURL = url.Normalize(baseURL, file.Scheme)
	exists, _ := fs.Exists(ctx, baseURL)
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base directory: %w", err)
		}
	}
	return &FS{baseURL: baseURL, fs: fs}, nil
}
