package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-talent/internal/models"
)

func TestValidateRequest(t *testing.T) {
	years := func(n int) *int { return &n }

	tests := []struct {
		name      string
		req       any
		wantField string
	}{
		{"valid hr", models.HRQuestionsRequest{Experience: years(5)}, ""},
		{"zero years is valid", models.HRQuestionsRequest{Experience: years(0)}, ""},
		{"missing years", models.HRQuestionsRequest{}, "Experience"},
		{"too many years", models.HRQuestionsRequest{Experience: years(51)}, "Experience"},
		{"missing resume text", models.TechnicalQuestionsRequest{JobDescription: "jd"}, "ResumeText"},
		{"missing job role", models.MockSetupRequest{JobDescription: "jd", CompanyName: "Acme"}, "JobRole"},
		{"missing resume upload", models.ATSRequest{JobDescription: "jd"}, "Resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "Experience", Message: "must be at most 50"}

	assert.Equal(t, "validation error in Experience: must be at most 50", err.Error())
	assert.Equal(t, "validation error: x", (&ValidationError{Message: "x"}).Error())
}
