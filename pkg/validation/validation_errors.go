package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth / profile fields
	"Email":           "Email",
	"Password":        "Password",
	"ConfirmPassword": "Confirm password",
	"CurrentPassword": "Current password",
	"NewPassword":     "New password",
	"NewEmail":        "New email",
	"FirstName":       "First name",
	"LastName":        "Last name",
	"JobTitle":        "Job title",
	"ProfileImage":    "Profile image",
	"UserBio":         "Bio",

	// Skill fields
	"SkillName":         "Skill name",
	"ProficiencyLevel":  "Proficiency level",
	"SkillCategory":     "Skill category",
	"SkillDescription":  "Skill description",
	"YearsOfExperience": "Years of experience",
	"ProjectIDs":        "Project IDs",

	// Project fields
	"ProjectTitle":        "Project title",
	"ProjectDescription":  "Project description",
	"Thumbnail":           "Thumbnail",
	"ProjectGithubURL":    "GitHub URL",
	"ProjectLiveURL":      "Live URL",
	"ProjectStatus":       "Project status",
	"ProjectStartedDate":  "Start date",
	"ProjectFinishedDate": "Finish date",
	"SkillIDs":            "Skill IDs",

	// Goal fields
	"GoalTitle":       "Goal title",
	"GoalDescription": "Goal description",
	"GoalStatus":      "Goal status",
	"GoalPriority":    "Goal priority",
	"GoalTimeLine":    "Goal timeline",
	"StartDate":       "Start date",
	"DueDate":         "Due date",
	"Category":        "Category",
	"Progress":        "Progress",
	"GoalNote":        "Goal note",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, param)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, formatOneOfOptions(param))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", label, param)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// formatOneOfOptions turns the validator's space-separated oneof param into
// a readable comma-separated list, unquoting values that contain spaces.
func formatOneOfOptions(param string) string {
	var options []string
	var current strings.Builder
	inQuote := false

	for _, r := range param {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				options = append(options, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		options = append(options, current.String())
	}

	return strings.Join(options, ", ")
}
