package notification

import (
	"strings"
	"text/template"

	"farmmarket/models"
	"farmmarket/utils"

	"go.uber.org/zap"
)

// fallbackSubject is used when template rendering fails.
const fallbackSubject = "Notification"

// Render substitutes data into a template's subject and body. It never
// fails: any rendering error is logged and the caller gets the fallback
// subject with the raw, unrendered body text. Templates without a subject
// render an empty subject.
func Render(tmpl *models.NotificationTemplate, data map[string]any) (string, string) {
	logger := utils.GetLogger()

	body, err := renderText(tmpl.BodyTemplate, data)
	if err != nil {
		logger.Error("Template rendering failed",
			zap.String("template", tmpl.Name), zap.Error(err))
		return fallbackSubject, tmpl.BodyTemplate
	}

	subject := ""
	if tmpl.SubjectTemplate != "" {
		subject, err = renderText(tmpl.SubjectTemplate, data)
		if err != nil {
			logger.Error("Template rendering failed",
				zap.String("template", tmpl.Name), zap.Error(err))
			return fallbackSubject, tmpl.BodyTemplate
		}
	}

	return subject, body
}

func renderText(text string, data map[string]any) (string, error) {
	t, err := template.New("notification").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
