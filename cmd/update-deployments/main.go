package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/nais/tenant-rollout/internal/config"
	"github.com/nais/tenant-rollout/internal/database"
	"github.com/nais/tenant-rollout/internal/logger"
	"github.com/nais/tenant-rollout/internal/metrics"
	"github.com/nais/tenant-rollout/internal/pipeline"
	"github.com/nais/tenant-rollout/internal/rollout"
	"github.com/nais/tenant-rollout/internal/secrets"
	"github.com/nais/tenant-rollout/internal/snapshot"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const name = "update-deployments"

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
		log.WithError(err).Fatal("rollout failed")
	}
}

// run triggers the pipeline of every provisioned deployment in the snapshot made by get-deployments,
// one at a time, until every deployment has been processed or the error budget is exhausted
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

	rolloutMetrics, err := rollout.NewMetrics(meter)
	if err != nil {
		return err
	}

	opts := []rollout.Option{
		rollout.WithErrorBudget(cfg.ErrorBudget),
		rollout.WithMetrics(rolloutMetrics),
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
		opts = append(opts, rollout.WithAuditor(repo))
	}

	store := snapshot.NewStore(s3.NewFromConfig(awsCfg), cfg.Snapshot.Bucket, cfg.Snapshot.Prefix, cfg.Snapshot.Dir, log)
	deployments, err := store.Load(ctx, cfg.Snapshot.Name)
	if err != nil {
		return err
	}

	tracker := pipeline.NewTracker(
		pipeline.NewCodePipeline(codepipeline.NewFromConfig(awsCfg)),
		log.WithField("component", "pipeline"),
		pipeline.WithInterval(cfg.PollInterval),
		pipeline.WithMaxWait(cfg.MaxWait),
	)

	summary, err := rollout.New(tracker, log.WithField("component", "rollout"), opts...).Run(ctx, deployments)
	log.WithFields(logrus.Fields{
		"run_id":    summary.RunID,
		"attempted": summary.Attempted,
		"succeeded": summary.Succeeded,
		"skipped":   summary.Skipped,
		"errors":    summary.Errors,
	}).Info("rollout summary")
	return err
}
