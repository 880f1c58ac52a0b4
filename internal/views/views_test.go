package views

import (
	"bytes"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsTemplates(t *testing.T) {
	engine := New()

	require.NoError(t, engine.Load())
}

func TestRender_PagesInsideLayout(t *testing.T) {
	engine := New()

	pages := map[string]fiber.Map{
		"ats":       {"Title": "Smart Talent Intelligent", "Active": "ats", "MaxFileSizeMB": 200},
		"interview": {"Title": "Interview", "Active": "interview", "Kind": "hr"},
		"mock":      {"Title": "Mock", "Active": "mock", "State": "setup", "DurationOptions": []string{"5 min"}},
		"error":     {"Title": "Error", "Active": "", "Status": 404, "Error": "Not Found"},
	}

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, engine.Render(&buf, name, data, "layouts/main"))
			assert.Contains(t, buf.String(), "<nav>")
		})
	}
}

func TestRender_ErrorShowsRawResponse(t *testing.T) {
	var buf bytes.Buffer

	err := New().Render(&buf, "error", fiber.Map{
		"Title":       "Error",
		"Status":      502,
		"Error":       "error parsing JSON response",
		"RawResponse": "{not json",
	}, "layouts/main")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Raw AI response")
	assert.Contains(t, buf.String(), "{not json")
}
