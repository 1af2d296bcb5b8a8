package registry_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/nais/tenant-rollout/internal/registry"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type mockDynamoDBAPI struct {
	scanFunc func(ctx context.Context, params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (m *mockDynamoDBAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return m.scanFunc(ctx, params)
}

type mockEC2API struct {
	describeRegionsFunc func(ctx context.Context, params *ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error)
}

func (m *mockEC2API) DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	return m.describeRegionsFunc(ctx, params)
}

type mockCloudFormationAPI struct {
	listStacksFunc func(ctx context.Context, params *cloudformation.ListStacksInput) (*cloudformation.ListStacksOutput, error)
}

func (m *mockCloudFormationAPI) ListStacks(ctx context.Context, params *cloudformation.ListStacksInput, _ ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error) {
	return m.listStacksFunc(ctx, params)
}

func item(attrs map[string]string) map[string]types.AttributeValue {
	ret := make(map[string]types.AttributeValue, len(attrs))
	for k, v := range attrs {
		ret[k] = &types.AttributeValueMemberS{Value: v}
	}
	return ret
}

func TestClient_Records(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("records from all pages", func(t *testing.T) {
		calls := 0
		api := &mockDynamoDBAPI{
			scanFunc: func(_ context.Context, params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
				assert.Equal(t, "deployments", aws.ToString(params.TableName))
				calls++
				if calls == 1 {
					assert.Nil(t, params.ExclusiveStartKey)
					return &dynamodb.ScanOutput{
						Items: []map[string]types.AttributeValue{
							item(map[string]string{"id": "tenant1", "type": "silo", "account": "123456789012", "region": "eu-west-1"}),
						},
						LastEvaluatedKey: item(map[string]string{"id": "tenant1"}),
					}, nil
				}
				assert.Equal(t, item(map[string]string{"id": "tenant1"}), params.ExclusiveStartKey)
				return &dynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{
						item(map[string]string{"id": "tenant2", "type": "pool", "account": "210987654321", "region": "us-east-1"}),
					},
				}, nil
			},
		}

		records, err := registry.New(api, nil, nil, "deployments", log).Records(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []deployment.Record{
			{ID: "tenant1", Type: "silo", Account: "123456789012", Region: "eu-west-1"},
			{ID: "tenant2", Type: "pool", Account: "210987654321", Region: "us-east-1"},
		}, records)
	})

	t.Run("missing and non-string attributes are empty", func(t *testing.T) {
		api := &mockDynamoDBAPI{
			scanFunc: func(context.Context, *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
				return &dynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{
						{
							"id":      &types.AttributeValueMemberS{Value: "tenant1"},
							"account": &types.AttributeValueMemberN{Value: "123456789012"},
						},
					},
				}, nil
			},
		}

		records, err := registry.New(api, nil, nil, "", log).Records(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []deployment.Record{{ID: "tenant1"}}, records)
	})

	t.Run("default table name", func(t *testing.T) {
		api := &mockDynamoDBAPI{
			scanFunc: func(_ context.Context, params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
				assert.Equal(t, registry.DefaultTableName, aws.ToString(params.TableName))
				return &dynamodb.ScanOutput{}, nil
			},
		}

		records, err := registry.New(api, nil, nil, "", log).Records(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("scan error", func(t *testing.T) {
		api := &mockDynamoDBAPI{
			scanFunc: func(context.Context, *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
				return nil, assert.AnError
			},
		}

		_, err := registry.New(api, nil, nil, "", log).Records(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestClient_Regions(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("regions", func(t *testing.T) {
		api := &mockEC2API{
			describeRegionsFunc: func(context.Context, *ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error) {
				return &ec2.DescribeRegionsOutput{
					Regions: []ec2types.Region{
						{RegionName: aws.String("eu-west-1")},
						{RegionName: aws.String("us-east-1")},
					},
				}, nil
			},
		}

		regions, err := registry.New(nil, api, nil, "", log).Regions(ctx)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"eu-west-1", "us-east-1"}, regions.UnsortedList())
	})

	t.Run("no regions", func(t *testing.T) {
		api := &mockEC2API{
			describeRegionsFunc: func(context.Context, *ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error) {
				return &ec2.DescribeRegionsOutput{}, nil
			},
		}

		_, err := registry.New(nil, api, nil, "", log).Regions(ctx)
		assert.ErrorIs(t, err, registry.ErrNoRegions)
	})

	t.Run("error", func(t *testing.T) {
		api := &mockEC2API{
			describeRegionsFunc: func(context.Context, *ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error) {
				return nil, assert.AnError
			},
		}

		_, err := registry.New(nil, api, nil, "", log).Regions(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestClient_ProvisionedPipelines(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("completed stacks from all pages", func(t *testing.T) {
		calls := 0
		api := &mockCloudFormationAPI{
			listStacksFunc: func(_ context.Context, params *cloudformation.ListStacksInput) (*cloudformation.ListStacksOutput, error) {
				assert.ElementsMatch(t, []cftypes.StackStatus{
					cftypes.StackStatusCreateComplete,
					cftypes.StackStatusRollbackComplete,
					cftypes.StackStatusUpdateComplete,
					cftypes.StackStatusUpdateRollbackComplete,
				}, params.StackStatusFilter)

				calls++
				if calls == 1 {
					return &cloudformation.ListStacksOutput{
						StackSummaries: []cftypes.StackSummary{{StackName: aws.String("silo-tenant1-pipeline")}},
						NextToken:      aws.String("page-2"),
					}, nil
				}
				assert.Equal(t, "page-2", aws.ToString(params.NextToken))
				return &cloudformation.ListStacksOutput{
					StackSummaries: []cftypes.StackSummary{{StackName: aws.String("pool-tenant2-pipeline")}},
				}, nil
			},
		}

		stacks, err := registry.New(nil, nil, api, "", log).ProvisionedPipelines(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, stacks.HasAll("silo-tenant1-pipeline", "pool-tenant2-pipeline"))
		assert.Equal(t, 2, stacks.Len())
	})

	t.Run("error", func(t *testing.T) {
		api := &mockCloudFormationAPI{
			listStacksFunc: func(context.Context, *cloudformation.ListStacksInput) (*cloudformation.ListStacksOutput, error) {
				return nil, assert.AnError
			},
		}

		_, err := registry.New(nil, nil, api, "", log).ProvisionedPipelines(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
