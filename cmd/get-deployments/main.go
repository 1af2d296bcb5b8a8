package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/nais/tenant-rollout/internal/config"
	"github.com/nais/tenant-rollout/internal/database"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/nais/tenant-rollout/internal/logger"
	"github.com/nais/tenant-rollout/internal/metrics"
	"github.com/nais/tenant-rollout/internal/registry"
	"github.com/nais/tenant-rollout/internal/secrets"
	"github.com/nais/tenant-rollout/internal/snapshot"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const name = "get-deployments"

func main() {
	cfg, err := config.New(name, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		logrus.WithError(err).Fatal("parsing configuration")
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		logrus.WithError(err).Fatal("creating logger")
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("validating configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("building deployment snapshot")
	}
}

// run reads a point-in-time snapshot of the deployment registry, validates every record, checks the
// provisioning status of each deployment and saves the result for update-deployments
func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	awsCfg, err := cfg.AWS.Load(ctx)
	if err != nil {
		return err
	}

	provider, err := metrics.New()
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Push(context.WithoutCancel(ctx), cfg.PushgatewayURL, name); err != nil {
			log.WithError(err).Warn("unable to push metrics")
		}
	}()
	meter := provider.Meter("github.com/nais/tenant-rollout/" + name)

	records, err := meter.Int64Counter("snapshot_records", metric.WithDescription("Number of deployment records read from the registry, by result"))
	if err != nil {
		return err
	}

	secretsClient := secrets.New(secretsmanager.NewFromConfig(awsCfg), log.WithField("component", "secrets"))
	repo, closeRepo, err := database.OpenConfigured(ctx, cfg.DBConnectionDSN, cfg.DBConnectionSecret, secretsClient, log.WithField("component", "database"))
	if err != nil {
		return err
	}
	defer closeRepo()
	if repo != nil {
		if err := repo.Metrics(meter); err != nil {
			return err
		}
	}

	client := registry.NewFromConfig(awsCfg, cfg.DeploymentTable, log.WithField("component", "registry"))
	provisioned, err := client.ProvisionedPipelines(ctx)
	if err != nil {
		return err
	}

	regions, err := client.Regions(ctx)
	if err != nil {
		return err
	}

	input, err := client.Records(ctx)
	if err != nil {
		return err
	}
	log.WithField("records", input).Info("records from deployment registry")

	deployments, rejections := deployment.BuildSnapshot(input, regions, provisioned, log)
	log.WithField("deployments", deployments).Info("validated records")
	records.Add(ctx, int64(len(deployments)), metric.WithAttributes(attribute.String("result", "accepted")))
	records.Add(ctx, int64(len(rejections)), metric.WithAttributes(attribute.String("result", "rejected")))

	if repo != nil {
		if err := repo.RecordRejections(ctx, cfg.Snapshot.Name, rejections); err != nil {
			log.WithError(err).Warn("unable to audit rejected deployment records")
		}
	}

	store := snapshot.NewStore(s3.NewFromConfig(awsCfg), cfg.Snapshot.Bucket, cfg.Snapshot.Prefix, cfg.Snapshot.Dir, log)
	return store.Save(ctx, cfg.Snapshot.Name, deployments)
}
