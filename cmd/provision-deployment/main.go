package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nais/tenant-rollout/internal/config"
	"github.com/nais/tenant-rollout/internal/logger"
	"github.com/nais/tenant-rollout/internal/provision"
	"github.com/nais/tenant-rollout/internal/registry"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const name = "provision-deployment"

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
		log.WithError(err).Fatal("provisioning deployment")
	}
}

// run provisions the pipeline of a new deployment record. It is started by the registry stream
// trigger, which passes the attributes of the new record in the environment.
func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	record, err := provision.Request{
		ID:      cfg.Provision.DeploymentID,
		Type:    cfg.Provision.DeploymentType,
		Account: cfg.Provision.ComponentAccount,
		Region:  cfg.Provision.ComponentRegion,
	}.Record()
	if err != nil {
		return err
	}
	log.WithField("record", record).Info("new deployment record")

	awsCfg, err := cfg.AWS.Load(ctx)
	if err != nil {
		return err
	}

	regions, err := registry.NewFromConfig(awsCfg, cfg.DeploymentTable, log.WithField("component", "registry")).Regions(ctx)
	if err != nil {
		return err
	}

	return provision.New(log, provision.WithCommand(cfg.CDKCommand)).Provision(ctx, record, regions)
}
