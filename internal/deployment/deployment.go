package deployment

// Type is the deployment topology of a tenant
type Type string

const (
	// TypeSilo is a deployment with resources dedicated to a single tenant
	TypeSilo Type = "silo"

	// TypePool is a deployment with resources shared by a pool of tenants
	TypePool Type = "pool"
)

// Record is a deployment record as read from the deployment registry. Absent attributes are
// represented by empty strings.
type Record struct {
	ID      string `json:"id" dynamodbav:"id"`
	Type    string `json:"type" dynamodbav:"type"`
	Account string `json:"account" dynamodbav:"account"`
	Region  string `json:"region" dynamodbav:"region"`
}

// Deployment is a validated deployment record, tagged with its provisioning status. Use Validate to
// construct one from a Record.
type Deployment struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Account     string `json:"account"`
	Region      string `json:"region"`
	Provisioned bool   `json:"provisioned"`
}

// PipelineName returns the name of the delivery pipeline for the deployment
func (d Deployment) PipelineName() string {
	return PipelineName(d.Type, d.ID)
}

// PipelineName returns the name of the delivery pipeline (and the stack that provisions it) for the
// given deployment type and id
func PipelineName(t Type, id string) string {
	return string(t) + "-" + id + "-pipeline"
}
