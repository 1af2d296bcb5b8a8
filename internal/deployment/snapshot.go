package deployment

import (
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Rejection is a deployment record that failed validation
type Rejection struct {
	Record Record
	Err    error
}

// BuildSnapshot validates the records and tags each valid deployment with its provisioning status.
// Invalid records are logged and left out of the snapshot, and returned as rejections. The order of
// the records is preserved.
func BuildSnapshot(records []Record, regions, provisionedPipelines sets.Set[string], log logrus.FieldLogger) ([]Deployment, []Rejection) {
	deployments := make([]Deployment, 0, len(records))
	var rejections []Rejection

	for _, record := range records {
		d, err := Validate(record, regions)
		if err != nil {
			log.WithError(err).
				WithField("deployment_id", record.ID).
				Warn("deployment record failed validation, ignoring record")
			rejections = append(rejections, Rejection{Record: record, Err: err})
			continue
		}

		d.Provisioned = provisionedPipelines.Has(d.PipelineName())
		deployments = append(deployments, d)
	}

	return deployments, rejections
}
