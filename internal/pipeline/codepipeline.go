package pipeline

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
)

// sourceStage is the first stage of every tenant pipeline. The latest execution of this stage is the
// latest execution of the pipeline.
const sourceStage = "Source"

// CodePipelineAPI is the subset of the CodePipeline client used by this package
type CodePipelineAPI interface {
	StartPipelineExecution(ctx context.Context, params *codepipeline.StartPipelineExecutionInput, optFns ...func(*codepipeline.Options)) (*codepipeline.StartPipelineExecutionOutput, error)
	GetPipelineExecution(ctx context.Context, params *codepipeline.GetPipelineExecutionInput, optFns ...func(*codepipeline.Options)) (*codepipeline.GetPipelineExecutionOutput, error)
	GetPipelineState(ctx context.Context, params *codepipeline.GetPipelineStateInput, optFns ...func(*codepipeline.Options)) (*codepipeline.GetPipelineStateOutput, error)
}

// CodePipeline controls pipelines in AWS CodePipeline
type CodePipeline struct {
	api CodePipelineAPI
}

var _ Control = &CodePipeline{}

// NewCodePipeline creates a new CodePipeline pipeline control
func NewCodePipeline(api CodePipelineAPI) *CodePipeline {
	return &CodePipeline{api: api}
}

func (c *CodePipeline) Start(ctx context.Context, pipeline string) (string, error) {
	out, err := c.api.StartPipelineExecution(ctx, &codepipeline.StartPipelineExecutionInput{
		Name: aws.String(pipeline),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.PipelineExecutionId), nil
}

func (c *CodePipeline) ExecutionStatus(ctx context.Context, pipeline, executionID string) (Status, error) {
	out, err := c.api.GetPipelineExecution(ctx, &codepipeline.GetPipelineExecutionInput{
		PipelineName:        aws.String(pipeline),
		PipelineExecutionId: aws.String(executionID),
	})
	if err != nil {
		return StatusUndefined, err
	}

	if out.PipelineExecution == nil {
		return StatusUndefined, nil
	}
	return ParseStatus(string(out.PipelineExecution.Status)), nil
}

func (c *CodePipeline) LatestExecutionID(ctx context.Context, pipeline string) (string, error) {
	out, err := c.api.GetPipelineState(ctx, &codepipeline.GetPipelineStateInput{
		Name: aws.String(pipeline),
	})
	if err != nil {
		return "", err
	}

	for _, stage := range out.StageStates {
		if aws.ToString(stage.StageName) != sourceStage {
			continue
		}
		if stage.LatestExecution == nil {
			return "", nil
		}
		return aws.ToString(stage.LatestExecution.PipelineExecutionId), nil
	}
	return "", nil
}
