package pipeline_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline/types"
	"github.com/nais/tenant-rollout/internal/pipeline"
	"github.com/stretchr/testify/assert"
)

type mockCodePipelineAPI struct {
	startFunc     func(ctx context.Context, params *codepipeline.StartPipelineExecutionInput) (*codepipeline.StartPipelineExecutionOutput, error)
	executionFunc func(ctx context.Context, params *codepipeline.GetPipelineExecutionInput) (*codepipeline.GetPipelineExecutionOutput, error)
	stateFunc     func(ctx context.Context, params *codepipeline.GetPipelineStateInput) (*codepipeline.GetPipelineStateOutput, error)
}

func (m *mockCodePipelineAPI) StartPipelineExecution(ctx context.Context, params *codepipeline.StartPipelineExecutionInput, _ ...func(*codepipeline.Options)) (*codepipeline.StartPipelineExecutionOutput, error) {
	return m.startFunc(ctx, params)
}

func (m *mockCodePipelineAPI) GetPipelineExecution(ctx context.Context, params *codepipeline.GetPipelineExecutionInput, _ ...func(*codepipeline.Options)) (*codepipeline.GetPipelineExecutionOutput, error) {
	return m.executionFunc(ctx, params)
}

func (m *mockCodePipelineAPI) GetPipelineState(ctx context.Context, params *codepipeline.GetPipelineStateInput, _ ...func(*codepipeline.Options)) (*codepipeline.GetPipelineStateOutput, error) {
	return m.stateFunc(ctx, params)
}

func TestCodePipeline_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("execution id", func(t *testing.T) {
		api := &mockCodePipelineAPI{
			startFunc: func(_ context.Context, params *codepipeline.StartPipelineExecutionInput) (*codepipeline.StartPipelineExecutionOutput, error) {
				assert.Equal(t, pipelineName, aws.ToString(params.Name))
				return &codepipeline.StartPipelineExecutionOutput{PipelineExecutionId: aws.String("exec-1")}, nil
			},
		}
		id, err := pipeline.NewCodePipeline(api).Start(ctx, pipelineName)
		assert.NoError(t, err)
		assert.Equal(t, "exec-1", id)
	})

	t.Run("no execution id", func(t *testing.T) {
		api := &mockCodePipelineAPI{
			startFunc: func(context.Context, *codepipeline.StartPipelineExecutionInput) (*codepipeline.StartPipelineExecutionOutput, error) {
				return &codepipeline.StartPipelineExecutionOutput{}, nil
			},
		}
		id, err := pipeline.NewCodePipeline(api).Start(ctx, pipelineName)
		assert.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestCodePipeline_ExecutionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("known status", func(t *testing.T) {
		api := &mockCodePipelineAPI{
			executionFunc: func(_ context.Context, params *codepipeline.GetPipelineExecutionInput) (*codepipeline.GetPipelineExecutionOutput, error) {
				assert.Equal(t, pipelineName, aws.ToString(params.PipelineName))
				assert.Equal(t, "exec-1", aws.ToString(params.PipelineExecutionId))
				return &codepipeline.GetPipelineExecutionOutput{
					PipelineExecution: &types.PipelineExecution{Status: types.PipelineExecutionStatusSuperseded},
				}, nil
			},
		}
		status, err := pipeline.NewCodePipeline(api).ExecutionStatus(ctx, pipelineName, "exec-1")
		assert.NoError(t, err)
		assert.Equal(t, pipeline.StatusSuperseded, status)
	})

	t.Run("missing execution", func(t *testing.T) {
		api := &mockCodePipelineAPI{
			executionFunc: func(context.Context, *codepipeline.GetPipelineExecutionInput) (*codepipeline.GetPipelineExecutionOutput, error) {
				return &codepipeline.GetPipelineExecutionOutput{}, nil
			},
		}
		status, err := pipeline.NewCodePipeline(api).ExecutionStatus(ctx, pipelineName, "exec-1")
		assert.NoError(t, err)
		assert.Equal(t, pipeline.StatusUndefined, status)
	})

	t.Run("error", func(t *testing.T) {
		api := &mockCodePipelineAPI{
			executionFunc: func(context.Context, *codepipeline.GetPipelineExecutionInput) (*codepipeline.GetPipelineExecutionOutput, error) {
				return nil, assert.AnError
			},
		}
		_, err := pipeline.NewCodePipeline(api).ExecutionStatus(ctx, pipelineName, "exec-1")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCodePipeline_LatestExecutionID(t *testing.T) {
	ctx := context.Background()

	stateWith := func(stages ...types.StageState) *mockCodePipelineAPI {
		return &mockCodePipelineAPI{
			stateFunc: func(_ context.Context, params *codepipeline.GetPipelineStateInput) (*codepipeline.GetPipelineStateOutput, error) {
				assert.Equal(t, pipelineName, aws.ToString(params.Name))
				return &codepipeline.GetPipelineStateOutput{StageStates: stages}, nil
			},
		}
	}

	t.Run("latest execution of source stage", func(t *testing.T) {
		api := stateWith(
			types.StageState{StageName: aws.String("Build"), LatestExecution: &types.StageExecution{PipelineExecutionId: aws.String("exec-1")}},
			types.StageState{StageName: aws.String("Source"), LatestExecution: &types.StageExecution{PipelineExecutionId: aws.String("exec-2")}},
		)
		id, err := pipeline.NewCodePipeline(api).LatestExecutionID(ctx, pipelineName)
		assert.NoError(t, err)
		assert.Equal(t, "exec-2", id)
	})

	t.Run("source stage without executions", func(t *testing.T) {
		api := stateWith(types.StageState{StageName: aws.String("Source")})
		id, err := pipeline.NewCodePipeline(api).LatestExecutionID(ctx, pipelineName)
		assert.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("no source stage", func(t *testing.T) {
		api := stateWith(types.StageState{StageName: aws.String("Build")})
		id, err := pipeline.NewCodePipeline(api).LatestExecutionID(ctx, pipelineName)
		assert.NoError(t, err)
		assert.Empty(t, id)
	})
}
