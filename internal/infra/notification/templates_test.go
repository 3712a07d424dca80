package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate_SubstitutesPlaceholders(t *testing.T) {
	t.Parallel()

	body := renderTemplate(verificationEmailTemplate, map[string]string{"verificationCode": "123456"})
	assert.Contains(t, body, "123456")
	assert.NotContains(t, body, "{verificationCode}")

	body = renderTemplate(passwordResetRequestTemplate, map[string]string{"resetURL": "https://example.com/reset-password/abc"})
	assert.Contains(t, body, `href="https://example.com/reset-password/abc"`)
	assert.NotContains(t, body, "{resetURL}")
}

func TestRenderTemplate_LeavesUnknownPlaceholdersAlone(t *testing.T) {
	t.Parallel()

	rendered := renderTemplate("Hello {name}", map[string]string{"other": "x"})
	assert.True(t, strings.Contains(rendered, "{name}"))
}
