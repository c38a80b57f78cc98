package submissions

import (
	"os"

	"github.com/go-playground/validator/v10"

	"Backend-BenefitsIntake/src/models"
)

// ValidationPolicy is applied at the pipeline boundary before a record is
// stamped and persisted.
type ValidationPolicy interface {
	Validate(*models.Submission) error
}

// OpenPolicy accepts any value in any field, including empty. This is the
// default intake behavior.
type OpenPolicy struct{}

func (OpenPolicy) Validate(*models.Submission) error { return nil }

// StrictPolicy checks the `validate` tags on the submission model.
type StrictPolicy struct {
	validate *validator.Validate
}

func NewStrictPolicy() *StrictPolicy {
	return &StrictPolicy{validate: validator.New()}
}

func (p *StrictPolicy) Validate(submission *models.Submission) error {
	return p.validate.Struct(submission)
}

// PolicyFromEnv selects the intake policy from INTAKE_VALIDATION.
func PolicyFromEnv() ValidationPolicy {
	if os.Getenv("INTAKE_VALIDATION") == "strict" {
		return NewStrictPolicy()
	}
	return OpenPolicy{}
}
