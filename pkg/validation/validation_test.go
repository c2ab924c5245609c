package validation_test

import (
	"testing"

	"go-skillstack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillForm struct {
	SkillName        string `validate:"required,notblank"`
	ProficiencyLevel string `validate:"required,oneof=Beginner Novice Intermediate Advanced Expert"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestNotBlank(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(skillForm{SkillName: "Go", ProficiencyLevel: "Expert"}))
	assert.Error(t, v.Struct(skillForm{SkillName: "   ", ProficiencyLevel: "Expert"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	err := v.Struct(skillForm{SkillName: "", ProficiencyLevel: "Guru"})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "Skill name")
	assert.Contains(t, messages[0], "required")
	assert.Contains(t, messages[1], "Proficiency level")
}

func TestFormatNonValidationError(t *testing.T) {
	messages := validation.FormatValidationErrors(assert.AnError)
	require.Len(t, messages, 1)
	assert.Equal(t, assert.AnError.Error(), messages[0])
}
