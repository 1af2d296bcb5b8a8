package deployment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	ErrMissingID      = errors.New("missing required attribute id")
	ErrIDWhitespace   = errors.New("attribute id contains whitespace characters")
	ErrMissingType    = errors.New("missing required attribute type")
	ErrInvalidType    = errors.New("attribute type is not either of pool or silo")
	ErrMissingAccount = errors.New("missing required attribute account")
	ErrInvalidAccount = errors.New("attribute account has invalid AWS account ID format")
	ErrMissingRegion  = errors.New("missing required attribute region")
	ErrInvalidRegion  = errors.New("attribute region has invalid AWS region")
)

var accountPattern = regexp.MustCompile(`^[0-9]{12}$`)

// ValidationError is returned when a deployment record is not admissible. Err is one of the
// sentinel errors of this package.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a deployment record against the set of valid regions and returns the validated
// deployment. Attributes are checked in the order id, type, account, region, and the first violation
// is returned.
func Validate(record Record, regions sets.Set[string]) (Deployment, error) {
	switch {
	case record.ID == "":
		return Deployment{}, invalid("id", "", ErrMissingID)
	case strings.IndexFunc(record.ID, unicode.IsSpace) >= 0:
		return Deployment{}, invalid("id", record.ID, ErrIDWhitespace)
	}

	switch Type(record.Type) {
	case "":
		return Deployment{}, invalid("type", "", ErrMissingType)
	case TypeSilo, TypePool:
	default:
		return Deployment{}, invalid("type", record.Type, ErrInvalidType)
	}

	switch {
	case record.Account == "":
		return Deployment{}, invalid("account", "", ErrMissingAccount)
	case !accountPattern.MatchString(record.Account):
		return Deployment{}, invalid("account", record.Account, ErrInvalidAccount)
	}

	switch {
	case record.Region == "":
		return Deployment{}, invalid("region", "", ErrMissingRegion)
	case !regions.Has(record.Region):
		return Deployment{}, invalid("region", record.Region, ErrInvalidRegion)
	}

	return Deployment{
		ID:      record.ID,
		Type:    Type(record.Type),
		Account: record.Account,
		Region:  record.Region,
	}, nil
}

func invalid(field, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}
