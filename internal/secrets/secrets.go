package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

var (
	ErrSecretNotFound = errors.New("secret not found")
	ErrSecretEmpty    = errors.New("secret value is empty")
	ErrAccessDenied   = errors.New("access denied to secret")
)

type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Client reads secrets from AWS Secrets Manager
type Client struct {
	api SecretsManagerAPI
	log logrus.FieldLogger
}

func New(api SecretsManagerAPI, log logrus.FieldLogger) *Client {
	return &Client{api: api, log: log}
}

// Secret returns the string value of the secret with the given name or ARN
func (c *Client) Secret(ctx context.Context, name string) (string, error) {
	out, err := c.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("getting secret %s: %w", name, mapError(err))
	}

	value := aws.ToString(out.SecretString)
	if value == "" {
		return "", fmt.Errorf("getting secret %s: %w", name, ErrSecretEmpty)
	}

	c.log.WithField("secret", name).Debug("read secret")
	return value, nil
}

// databaseSecret is the JSON layout of database credentials managed by Secrets Manager
type databaseSecret struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Host     string      `json:"host"`
	Port     json.Number `json:"port"`
	DBName   string      `json:"dbname"`
}

// DSN returns a postgres connection string read from the named secret. The secret is either a
// connection string, or database credentials in the JSON layout used by Secrets Manager for RDS.
func (c *Client) DSN(ctx context.Context, name string) (string, error) {
	value, err := c.Secret(ctx, name)
	if err != nil {
		return "", err
	}

	var secret databaseSecret
	if err := json.Unmarshal([]byte(value), &secret); err != nil {
		return value, nil
	}

	if secret.Host == "" {
		return "", fmt.Errorf("secret %s has no database host", name)
	}

	host := secret.Host
	if secret.Port != "" {
		if _, err := strconv.Atoi(secret.Port.String()); err != nil {
			return "", fmt.Errorf("secret %s has invalid database port %q", name, secret.Port)
		}
		host += ":" + secret.Port.String()
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(secret.Username, secret.Password),
		Host:   host,
		Path:   "/" + secret.DBName,
	}
	return dsn.String(), nil
}

func mapError(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "ResourceNotFoundException":
		return fmt.Errorf("%w: %w", ErrSecretNotFound, err)
	case "AccessDeniedException":
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	default:
		return err
	}
}
