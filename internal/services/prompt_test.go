package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_SubstitutesPlaceholders(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildATSEvaluationPrompt("Go developer, 5 years", "Backend engineer")

	assert.Contains(t, prompt, "Resume: Go developer, 5 years")
	assert.Contains(t, prompt, "Job Description: Backend engineer")
	assert.NotContains(t, prompt, "{resume}")
	assert.NotContains(t, prompt, "{jd}")
	assert.Contains(t, prompt, `"JD Match": "XX%"`)
}

func TestPromptBuilder_SinglePass(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildATSEvaluationPrompt("my resume mentions {jd} literally", "the JD")

	assert.Contains(t, prompt, "my resume mentions {jd} literally")
	assert.Equal(t, 1, strings.Count(prompt, "the JD"))
}

func TestPromptBuilder_UnknownPlaceholdersStay(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.Build(TemplateATSEval, map[string]string{"resume": "r"})

	assert.Contains(t, prompt, "Job Description: {jd}")
}

func TestPromptBuilder_NoEscapingOrCapping(t *testing.T) {
	pb := NewPromptBuilder()
	long := strings.Repeat("x", 100000) + `"quoted" <tag>`

	prompt := pb.BuildMockFeedbackPrompt("Q?", long)

	assert.Contains(t, prompt, "**Answer:** "+long)
}

func TestPromptBuilder_Templates(t *testing.T) {
	pb := NewPromptBuilder()

	assert.Contains(t, pb.BuildHRQuestionsPrompt(7), "Based on 7 years of experience")
	assert.Contains(t, pb.BuildTechnicalQuestionsPrompt("JD text", "CV text"), "Job Description: JD text\nResume: CV text")
	assert.Contains(t, pb.BuildMockQuestionPrompt("SRE", "Acme"), "for a SRE position at Acme")
	assert.Contains(t, pb.BuildMockFeedbackPrompt("Why Go?", "Simplicity"), "**Question:** Why Go?\n**Answer:** Simplicity")
}
