package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-playground/validator/v10"
	flag "github.com/spf13/pflag"
)

type AWS struct {
	Region   string `validate:"required"`
	Endpoint string `validate:"omitempty,url"`
}

// Load loads the shared AWS configuration for the region, using the default credential chain
func (a AWS) Load(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(a.Region),
	}
	if a.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(a.Endpoint))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return cfg, nil
}

type Snapshot struct {
	Name   string `validate:"required"`
	Dir    string
	Bucket string
	Prefix string
}

type Logger struct {
	Format string `validate:"oneof=json text"`
	Level  string `validate:"required"`
}

// Provision is the deployment record a provisioning job is started for
type Provision struct {
	DeploymentID     string
	DeploymentType   string
	ComponentAccount string
	ComponentRegion  string
}

type Config struct {
	AWS                AWS
	Snapshot           Snapshot
	Logger             Logger
	Provision          Provision
	DeploymentTable    string        `validate:"required"`
	ErrorBudget        int           `validate:"min=1"`
	PollInterval       time.Duration `validate:"gt=0"`
	MaxWait            time.Duration `validate:"gt=0"`
	DBConnectionDSN    string
	DBConnectionSecret string `validate:"excluded_with=DBConnectionDSN"`
	PushgatewayURL     string `validate:"omitempty,url"`
	CDKCommand         string `validate:"required"`
}

// New parses the command line arguments of the named program. Every flag defaults to the value of
// its environment variable.
func New(name string, args []string) (*Config, error) {
	cfg := &Config{}
	var errs []error

	errorBudget, err := intEnv("ERROR_BUDGET", 1)
	errs = append(errs, err)
	pollInterval, err := durationEnv("POLL_INTERVAL", 20*time.Second)
	errs = append(errs, err)
	maxWait, err := durationEnv("MAX_WAIT", 30*time.Minute)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&cfg.AWS.Region, "aws-region", os.Getenv("AWS_REGION"), "AWS region of the deployment registry and pipelines")
	flags.StringVar(&cfg.AWS.Endpoint, "aws-endpoint", os.Getenv("AWS_ENDPOINT_URL"), "Custom AWS endpoint, e.g. for localstack")
	flags.StringVar(&cfg.DeploymentTable, "deployment-table", envOrDefault("DEPLOYMENT_TABLE_NAME", "tenant-deployments"), "DynamoDB table holding the deployment records")
	flags.StringVar(&cfg.Snapshot.Name, "snapshot-name", envOrDefault("SNAPSHOT_NAME", "deployments.json"), "Name of the registry snapshot")
	flags.StringVar(&cfg.Snapshot.Dir, "snapshot-dir", envOrDefault("SNAPSHOT_DIR", "build_output"), "Directory holding the registry snapshot")
	flags.StringVar(&cfg.Snapshot.Bucket, "snapshot-bucket", os.Getenv("SNAPSHOT_BUCKET"), "S3 bucket holding the registry snapshot, instead of the snapshot directory")
	flags.StringVar(&cfg.Snapshot.Prefix, "snapshot-prefix", os.Getenv("SNAPSHOT_PREFIX"), "Key prefix of the registry snapshot in the S3 bucket")
	flags.IntVar(&cfg.ErrorBudget, "error-budget", errorBudget, "Number of failed deployments that aborts the rollout")
	flags.DurationVar(&cfg.PollInterval, "poll-interval", pollInterval, "Time between pipeline execution status checks")
	flags.DurationVar(&cfg.MaxWait, "max-wait", maxWait, "Maximum time to wait for a pipeline execution")
	flags.StringVar(&cfg.DBConnectionDSN, "db-connection-dsn", os.Getenv("ROLLOUT_DBCONN_STRING"), "Database connection DSN of the audit store")
	flags.StringVar(&cfg.DBConnectionSecret, "db-connection-secret", os.Getenv("ROLLOUT_DBCONN_SECRET"), "Secrets Manager secret holding the database connection of the audit store")
	flags.StringVar(&cfg.PushgatewayURL, "pushgateway-url", os.Getenv("PUSHGATEWAY_URL"), "Prometheus pushgateway to push metrics to")
	flags.StringVar(&cfg.CDKCommand, "cdk-command", envOrDefault("CDK_COMMAND", "npx cdk"), "Command used to invoke the CDK toolkit")
	flags.StringVar(&cfg.Provision.DeploymentID, "deployment-id", os.Getenv("DEPLOYMENT_ID"), "ID of the deployment to provision")
	flags.StringVar(&cfg.Provision.DeploymentType, "deployment-type", os.Getenv("DEPLOYMENT_TYPE"), "Type of the deployment to provision (silo or pool)")
	flags.StringVar(&cfg.Provision.ComponentAccount, "component-account", os.Getenv("COMPONENT_ACCOUNT"), "AWS account of the component resources of the deployment to provision")
	flags.StringVar(&cfg.Provision.ComponentRegion, "component-region", os.Getenv("COMPONENT_REGION"), "AWS region of the component resources of the deployment to provision")
	flags.StringVar(&cfg.Logger.Format, "log-format", envOrDefault("LOG_FORMAT", "json"), "which log format to use")
	flags.StringVar(&cfg.Logger.Level, "log-level", envOrDefault("LOG_LEVEL", "info"), "which log level to output")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error describing every invalid configuration value
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
