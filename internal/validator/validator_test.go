package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email       string `json:"email" validate:"required,email"`
	CricketRole string `json:"cricket_role" validate:"cricket_role"`
	Gender      string `json:"gender" validate:"gender"`
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	// Валидные значения и пустые опциональные поля проходят
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", CricketRole: "batsman", Gender: "female"}))
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com"}))

	// Wildcard "all" не является хранимой ролью
	err := v.Validate(&sampleRequest{Email: "a@b.com", CricketRole: "all"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "cricket_role")
	assert.Contains(t, vErr.Errors["cricket_role"], "batsman")

	err = v.Validate(&sampleRequest{Email: "a@b.com", Gender: "robot"})
	require.Error(t, err)
}

type samplePatchRequest struct {
	CricketRole *string `json:"cricket_role" validate:"omitempty,cricket_role"`
	Gender      *string `json:"gender" validate:"omitempty,gender"`
}

func TestValidate_CustomRulesOnPointerFields(t *testing.T) {
	v := New()

	// nil-поля пропускаются
	assert.NoError(t, v.Validate(&samplePatchRequest{}))

	role := "bowler"
	assert.NoError(t, v.Validate(&samplePatchRequest{CricketRole: &role}))

	badRole := "wicketkeeper"
	err := v.Validate(&samplePatchRequest{CricketRole: &badRole})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "cricket_role")

	badGender := "robot"
	err = v.Validate(&samplePatchRequest{Gender: &badGender})
	require.Error(t, err)
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Имя поля берется из json-тега, а не из имени Go-поля
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}
