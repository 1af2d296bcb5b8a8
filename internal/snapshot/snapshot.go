package snapshot

import (
	"context"

	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/sirupsen/logrus"
)

const (
	DefaultName = "deployments.json"
	DefaultDir  = "build_output"
)

// Store persists the registry snapshot between the job that builds it and the job that rolls it out.
// Loading a snapshot that does not exist returns an empty snapshot.
type Store interface {
	Save(ctx context.Context, name string, deployments []deployment.Deployment) error
	Load(ctx context.Context, name string) ([]deployment.Deployment, error)
}

// NewStore returns an S3 store when a bucket is given, and a file store in dir otherwise
func NewStore(api S3API, bucket, prefix, dir string, log logrus.FieldLogger) Store {
	log = log.WithField("component", "snapshot")
	if bucket != "" {
		return NewS3Store(api, bucket, prefix, log)
	}
	return NewFileStore(dir, log)
}
