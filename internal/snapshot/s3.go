package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/sirupsen/logrus"
)

type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store keeps snapshots as JSON objects in an S3 bucket
type S3Store struct {
	api    S3API
	bucket string
	prefix string
	log    logrus.FieldLogger
}

var _ Store = &S3Store{}

func NewS3Store(api S3API, bucket, prefix string, log logrus.FieldLogger) *S3Store {
	return &S3Store{
		api:    api,
		bucket: bucket,
		prefix: prefix,
		log:    log.WithField("bucket", bucket),
	}
}

func (s *S3Store) Save(ctx context.Context, name string, deployments []deployment.Deployment) error {
	data, err := encode(deployments)
	if err != nil {
		return err
	}

	key := s.key(name)
	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading snapshot %s: %w", key, err)
	}

	s.log.WithFields(logrus.Fields{
		"key":         key,
		"deployments": len(deployments),
	}).Info("saved snapshot")
	return nil
}

func (s *S3Store) Load(ctx context.Context, name string) ([]deployment.Deployment, error) {
	key := s.key(name)
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isNotFound(err) {
		s.log.WithField("key", key).Warn("snapshot does not exist, using empty snapshot")
		return []deployment.Deployment{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("downloading snapshot %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", key, err)
	}

	return decode(data)
}

func (s *S3Store) key(name string) string {
	return path.Join(s.prefix, name)
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
