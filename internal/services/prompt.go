package services

import (
	"fmt"
	"strings"
)

type TemplateID string

const (
	TemplateATSEval       TemplateID = "ATS_EVAL"
	TemplateTechQuestions TemplateID = "TECH_QUESTIONS"
	TemplateHRQuestions   TemplateID = "HR_QUESTIONS"
	TemplateMockQuestion  TemplateID = "MOCK_QUESTION"
	TemplateMockFeedback  TemplateID = "MOCK_FEEDBACK"
)

var promptTemplates = map[TemplateID]string{
	TemplateATSEval: `Hey, act as a professional ATS (Application Tracking System) with deep expertise in software engineering and data science.
Evaluate the resume against the job description and provide an ATS evaluation strictly in JSON format.

Resume: {resume}
Job Description: {jd}

You MUST respond **only** in JSON format with NO extra text. The JSON format is:

{
    "JD Match": "XX%",
    "MissingKeywords": ["keyword1", "keyword2"],
    "Strengths": "Your strengths here.",
    "Areas for Improvement": "Your improvement areas here.",
    "SuggestedSkills": ["skill1", "skill2"],
    "FormattingRecommendations": "Your formatting suggestions here.",
    "ProfileSummary": "Your profile summary here.",
    "CertificateRecommendations": ["certificate1", "certificate2"]
}`,

	TemplateTechQuestions: `You are an expert technical interviewer. Analyze the following Job Description and Resume.

Job Description: {jd}
Resume: {resume}

**Respond strictly in JSON format, nothing else.** Use the following structure:

{
    "questions": [
        {
            "question": "Explain polymorphism in OOP.",
            "ideal_answer": "Polymorphism allows objects to be treated as instances of their parent class..."
        },
        {
            "question": "What is the time complexity of quicksort?",
            "ideal_answer": "Quicksort has an average time complexity of O(n log n)..."
        }
    ]
}`,

	TemplateHRQuestions: `You are an experienced HR interviewer. Based on {experience} years of experience,
generate 5 **behavioral and HR interview questions** with detailed answers.

**Respond strictly in JSON format, nothing else.** Use the following structure:

{
    "questions": [
        {
            "question": "Tell me about a time you handled a difficult situation.",
            "ideal_answer": "In my previous role, a critical project faced delays. I took initiative to adjust the timeline, reassign tasks, and communicate with stakeholders..."
        },
        {
            "question": "How do you handle conflicts in a team?",
            "ideal_answer": "I first understand each perspective, then facilitate open discussions to find a common solution..."
        }
    ]
}`,

	TemplateMockQuestion: `You are an AI interviewer conducting an interview for a {job_role} position at {company_name}.

Generate a single concise and clear interview question that is relevant to the role, with a short ideal expected answer.
Format the response in JSON:

{
    "question": "What is your experience with cloud computing?",
    "ideal_answer": "Cloud computing involves using remote servers for storage and processing."
}`,

	TemplateMockFeedback: `Evaluate the following interview response briefly:

**Question:** {question}
**Answer:** {answer}

Provide short, clear feedback with strengths and areas for improvement.`,
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build fills the template's {name} placeholders with values. Substitution is
// a single verbatim pass: user text is neither escaped nor capped, and
// placeholders that appear inside a substituted value are left alone.
func (pb *PromptBuilder) Build(id TemplateID, values map[string]string) string {
	template := promptTemplates[id]

	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// BuildATSEvaluationPrompt creates the prompt for the ATS evaluation page.
func (pb *PromptBuilder) BuildATSEvaluationPrompt(resumeText, jobDescription string) string {
	return pb.Build(TemplateATSEval, map[string]string{
		"resume": resumeText,
		"jd":     jobDescription,
	})
}

func (pb *PromptBuilder) BuildTechnicalQuestionsPrompt(jobDescription, resumeText string) string {
	return pb.Build(TemplateTechQuestions, map[string]string{
		"jd":     jobDescription,
		"resume": resumeText,
	})
}

func (pb *PromptBuilder) BuildHRQuestionsPrompt(yearsOfExperience int) string {
	return pb.Build(TemplateHRQuestions, map[string]string{
		"experience": fmt.Sprintf("%d", yearsOfExperience),
	})
}

func (pb *PromptBuilder) BuildMockQuestionPrompt(jobRole, companyName string) string {
	return pb.Build(TemplateMockQuestion, map[string]string{
		"job_role":     jobRole,
		"company_name": companyName,
	})
}

func (pb *PromptBuilder) BuildMockFeedbackPrompt(question, answer string) string {
	return pb.Build(TemplateMockFeedback, map[string]string{
		"question": question,
		"answer":   answer,
	})
}
