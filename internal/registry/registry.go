package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/nais/tenant-rollout/internal/deployment"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
)

// DefaultTableName is the name of the DynamoDB table holding the deployment records
const DefaultTableName = "tenant-deployments"

// ErrNoRegions is returned when the region catalog is empty
var ErrNoRegions = errors.New("no regions returned by query")

// Stack statuses of deployments that have been provisioned
var provisionedStackStatuses = []cftypes.StackStatus{
	cftypes.StackStatusCreateComplete,
	cftypes.StackStatusRollbackComplete,
	cftypes.StackStatusUpdateComplete,
	cftypes.StackStatusUpdateRollbackComplete,
}

type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

type CloudFormationAPI interface {
	ListStacks(ctx context.Context, params *cloudformation.ListStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error)
}

// Client reads the deployment registry and the live state needed to build a snapshot from it
type Client struct {
	dynamodb       DynamoDBAPI
	ec2            EC2API
	cloudformation CloudFormationAPI
	table          string
	log            logrus.FieldLogger
}

func New(dynamodb DynamoDBAPI, ec2 EC2API, cloudformation CloudFormationAPI, table string, log logrus.FieldLogger) *Client {
	if table == "" {
		table = DefaultTableName
	}

	return &Client{
		dynamodb:       dynamodb,
		ec2:            ec2,
		cloudformation: cloudformation,
		table:          table,
		log:            log,
	}
}

// NewFromConfig creates a registry client using the AWS service clients for cfg
func NewFromConfig(cfg aws.Config, table string, log logrus.FieldLogger) *Client {
	return New(dynamodb.NewFromConfig(cfg), ec2.NewFromConfig(cfg), cloudformation.NewFromConfig(cfg), table, log)
}

// Records returns every deployment record in the registry table, in scan order. Attributes that are
// missing or not strings are returned as empty strings, and are left to the validator to reject.
func (c *Client) Records(ctx context.Context) ([]deployment.Record, error) {
	records := make([]deployment.Record, 0)
	paginator := dynamodb.NewScanPaginator(c.dynamodb, &dynamodb.ScanInput{
		TableName: aws.String(c.table),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scanning table %s: %w", c.table, err)
		}

		for _, item := range page.Items {
			records = append(records, deployment.Record{
				ID:      stringAttribute(item, "id"),
				Type:    stringAttribute(item, "type"),
				Account: stringAttribute(item, "account"),
				Region:  stringAttribute(item, "region"),
			})
		}
	}

	c.log.WithFields(logrus.Fields{
		"table":   c.table,
		"records": len(records),
	}).Debug("scanned deployment registry")
	return records, nil
}

// Regions returns the names of all regions known to EC2
func (c *Client) Regions(ctx context.Context) (sets.Set[string], error) {
	out, err := c.ec2.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("describing regions: %w", err)
	}

	regions := sets.New[string]()
	for _, region := range out.Regions {
		if name := aws.ToString(region.RegionName); name != "" {
			regions.Insert(name)
		}
	}

	if regions.Len() == 0 {
		return nil, ErrNoRegions
	}

	return regions, nil
}

// ProvisionedPipelines returns the names of all stacks in a completed state. Deployment pipelines
// are provisioned as stacks with the same name as the pipeline.
func (c *Client) ProvisionedPipelines(ctx context.Context) (sets.Set[string], error) {
	stacks := sets.New[string]()
	paginator := cloudformation.NewListStacksPaginator(c.cloudformation, &cloudformation.ListStacksInput{
		StackStatusFilter: provisionedStackStatuses,
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing stacks: %w", err)
		}

		for _, stack := range page.StackSummaries {
			stacks.Insert(aws.ToString(stack.StackName))
		}
	}

	return stacks, nil
}

func stringAttribute(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
