//go:build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nais/tenant-rollout/internal/database"
	"github.com/nais/tenant-rollout/internal/database/gensql"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/nais/tenant-rollout/internal/pipeline"
	"github.com/nais/tenant-rollout/internal/rollout"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("rollout"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestIntegration_Repo(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	pool, err := database.NewDB(ctx, startPostgres(t), log)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := database.New(gensql.New(pool), log)
	now := time.Now().UTC().Truncate(time.Millisecond)
	run := rollout.Run{ID: uuid.New(), ErrorBudget: 1, Deployments: 2, StartedAt: now}

	require.NoError(t, repo.RunStarted(ctx, run))
	require.NoError(t, repo.AttemptFinished(ctx, rollout.Attempt{
		RunID:        run.ID,
		DeploymentID: "tenant1",
		Pipeline:     "silo-tenant1-pipeline",
		ExecutionID:  "exec-1",
		Outcome:      rollout.OutcomeSucceeded,
		StartedAt:    now,
		FinishedAt:   now.Add(time.Minute),
	}))
	require.NoError(t, repo.AttemptFinished(ctx, rollout.Attempt{
		RunID:        run.ID,
		DeploymentID: "tenant2",
		Pipeline:     "pool-tenant2-pipeline",
		Outcome:      rollout.OutcomeStartFailed,
		Err:          pipeline.ErrNoExecutionID,
		StartedAt:    now.Add(time.Minute),
		FinishedAt:   now.Add(time.Minute),
	}))

	run.Errors = 1
	run.Outcome = rollout.RunOutcomeBudgetExhausted
	run.FinishedAt = now.Add(2 * time.Minute)
	require.NoError(t, repo.RunFinished(ctx, run))

	stored, err := repo.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), stored.Errors)
	assert.Equal(t, gensql.RolloutRunOutcomeBudgetExhausted, stored.Outcome.RolloutRunOutcome)
	assert.True(t, stored.FinishedAt.Time.Equal(run.FinishedAt))

	attempts, err := repo.Attempts(ctx, run.ID)
	require.NoError(t, err)
	if assert.Len(t, attempts, 2) {
		assert.Equal(t, "tenant1", attempts[0].DeploymentID)
		assert.Equal(t, "exec-1", attempts[0].ExecutionID.String)
		assert.False(t, attempts[0].Error.Valid)
		assert.Equal(t, gensql.RolloutAttemptOutcomeStartFailed, attempts[1].Outcome)
		assert.Equal(t, pipeline.ErrNoExecutionID.Error(), attempts[1].Error.String)
	}

	_, err = deployment.Validate(deployment.Record{ID: "tenant3", Type: "silo", Account: "1234"}, nil)
	require.Error(t, err)
	require.NoError(t, repo.RecordRejections(ctx, "deployments.json", []deployment.Rejection{
		{Record: deployment.Record{ID: "tenant3", Type: "silo", Account: "1234"}, Err: err},
	}))

	rejections, err := repo.Rejections(ctx, "deployments.json")
	require.NoError(t, err)
	if assert.Len(t, rejections, 1) {
		assert.Equal(t, "tenant3", rejections[0].DeploymentID)
		assert.Equal(t, "account", rejections[0].Field.String)
	}
}
