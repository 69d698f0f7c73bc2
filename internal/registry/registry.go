// Package registry loads process registries from YAML or JSON documents.
package registry

import (
	"context"
	"fmt"

	"github.com/josefdc/Algoritmos-Despacho/internal/requests"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Service reads registry documents through afs, so any supported URL scheme works.
type Service struct {
	fs afs.Service
}

// Decode parses a registry document. JSON is accepted as a YAML subset.
func Decode(data []byte) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := yaml.Unmarshal(data, request); err != nil {
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}
	return request, nil
}

// Load downloads and decodes the registry document at URL.
func (s *Service) Load(ctx context.Context, URL string) (*requests.ScheduleRequests, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", URL, err)
	}
	request, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return request, nil
}

// New creates a registry service backed by fs, or afs.New() when fs is nil.
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
