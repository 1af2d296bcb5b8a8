package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
)

// DefaultCommand is the command used to invoke the CDK toolkit
const DefaultCommand = "npx cdk"

var (
	ErrMissingVariable = errors.New("missing required env variable")
	ErrEmptyCommand    = errors.New("cdk command is empty")
)

// Request is a new deployment record, as passed to the provisioning job by the registry stream trigger
type Request struct {
	ID      string
	Type    string
	Account string
	Region  string
}

// Record returns the deployment record of the request. Every field must be set.
func (r Request) Record() (deployment.Record, error) {
	for _, v := range []struct{ name, value string }{
		{"DEPLOYMENT_ID", r.ID},
		{"DEPLOYMENT_TYPE", r.Type},
		{"COMPONENT_ACCOUNT", r.Account},
		{"COMPONENT_REGION", r.Region},
	} {
		if v.value == "" {
			return deployment.Record{}, fmt.Errorf("%w %s", ErrMissingVariable, v.name)
		}
	}

	return deployment.Record{
		ID:      r.ID,
		Type:    r.Type,
		Account: r.Account,
		Region:  r.Region,
	}, nil
}

// Runner runs an external command
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as child processes sharing the standard streams of this process
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Provisioner deploys the delivery pipeline stack of new deployments
type Provisioner struct {
	runner  Runner
	command []string
	log     logrus.FieldLogger
}

type Option func(*Provisioner)

// WithRunner will set the runner used to invoke the CDK toolkit
func WithRunner(runner Runner) Option {
	return func(p *Provisioner) {
		p.runner = runner
	}
}

// WithCommand will set the command used to invoke the CDK toolkit, e.g. "npx cdk"
func WithCommand(command string) Option {
	return func(p *Provisioner) {
		p.command = strings.Fields(command)
	}
}

func New(log logrus.FieldLogger, opts ...Option) *Provisioner {
	p := &Provisioner{
		runner:  ExecRunner{},
		command: strings.Fields(DefaultCommand),
		log:     log,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Provision validates the record against the region catalog, and deploys the pipeline stack of the
// deployment if the record is valid
func (p *Provisioner) Provision(ctx context.Context, record deployment.Record, regions sets.Set[string]) error {
	if len(p.command) == 0 {
		return ErrEmptyCommand
	}

	d, err := deployment.Validate(record, regions)
	if err != nil {
		return fmt.Errorf("validating deployment record %q: %w", record.ID, err)
	}

	args := append(p.command[1:len(p.command):len(p.command)], Args(d)...)
	log := p.log.WithField("deployment_id", d.ID)
	log.WithField("command", strings.Join(append([]string{p.command[0]}, args...), " ")).Info("provisioning new deployment")

	if err := p.runner.Run(ctx, p.command[0], args...); err != nil {
		return fmt.Errorf("deploying stack %s: %w", d.PipelineName(), err)
	}

	log.Info("provisioned deployment")
	return nil
}

// Args returns the CDK toolkit arguments deploying the pipeline stack of d
func Args(d deployment.Deployment) []string {
	return []string{
		"deploy", d.PipelineName(),
		"--require-approval", "never",
		"-c", "deployment_type=" + string(d.Type),
		"-c", "deployment_id=" + d.ID,
		"-c", "component_account=" + d.Account,
		"-c", "component_region=" + d.Region,
	}
}
