//go:build integration

package registry_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/docker/go-connections/nat"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/nais/tenant-rollout/internal/registry"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

func TestIntegration_Records(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	container, err := localstack.Run(ctx, "localstack/localstack:3.8")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	port, err := nat.NewPort("tcp", "4566")
	require.NoError(t, err)
	endpoint, err := container.PortEndpoint(ctx, port, "http")
	require.NoError(t, err)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("eu-west-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		config.WithBaseEndpoint(endpoint),
	)
	require.NoError(t, err)

	db := dynamodb.NewFromConfig(cfg)
	_, err = db.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(registry.DefaultTableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	})
	require.NoError(t, err)

	records := []deployment.Record{
		{ID: "tenant1", Type: "silo", Account: "123456789012", Region: "eu-west-1"},
		{ID: "tenant2", Type: "pool", Account: "210987654321", Region: "us-east-1"},
		{ID: "tenant3", Type: "silo"},
	}
	for _, record := range records {
		av, err := attributevalue.MarshalMap(record)
		require.NoError(t, err)
		_, err = db.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(registry.DefaultTableName),
			Item:      av,
		})
		require.NoError(t, err)
	}

	got, err := registry.NewFromConfig(cfg, "", log).Records(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, records, got)

	regions, err := registry.NewFromConfig(cfg, "", log).Regions(ctx)
	require.NoError(t, err)
	assert.True(t, regions.Has("eu-west-1"))
}
