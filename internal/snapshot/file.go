package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/sirupsen/logrus"
)

// FileStore keeps snapshots as JSON files in a directory
type FileStore struct {
	dir string
	log logrus.FieldLogger
}

var _ Store = &FileStore{}

func NewFileStore(dir string, log logrus.FieldLogger) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) Save(_ context.Context, name string, deployments []deployment.Deployment) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	data, err := encode(deployments)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}

	s.log.WithFields(logrus.Fields{
		"path":        path,
		"deployments": len(deployments),
	}).Info("saved snapshot")
	return nil
}

func (s *FileStore) Load(_ context.Context, name string) ([]deployment.Deployment, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.WithField("path", path).Warn("snapshot does not exist, using empty snapshot")
		return []deployment.Deployment{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	return decode(data)
}

func encode(deployments []deployment.Deployment) ([]byte, error) {
	if deployments == nil {
		deployments = []deployment.Deployment{}
	}
	data, err := json.MarshalIndent(deployments, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]deployment.Deployment, error) {
	deployments := []deployment.Deployment{}
	if err := json.Unmarshal(data, &deployments); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return deployments, nil
}
