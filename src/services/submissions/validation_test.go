package submissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Backend-BenefitsIntake/src/models"
)

func TestOpenPolicyAcceptsAnything(t *testing.T) {
	policy := OpenPolicy{}

	assert.NoError(t, policy.Validate(&models.Submission{}))
	assert.NoError(t, policy.Validate(&models.Submission{
		Email:         "definitely not an email",
		PastDueAmount: "???",
	}))
}

func TestStrictPolicy(t *testing.T) {
	policy := NewStrictPolicy()

	t.Run("AcceptsEmptyFields", func(t *testing.T) {
		assert.NoError(t, policy.Validate(&models.Submission{}))
	})

	t.Run("AcceptsValidEmail", func(t *testing.T) {
		assert.NoError(t, policy.Validate(&models.Submission{Email: "a@b.com"}))
	})

	t.Run("RejectsMalformedEmail", func(t *testing.T) {
		assert.Error(t, policy.Validate(&models.Submission{Email: "not-an-email"}))
	})
}
