package notification

import (
	"testing"

	"farmmarket/models"
)

func TestRenderSubstitutesVariables(t *testing.T) {
	tmpl := &models.NotificationTemplate{
		Name:            "order_status_update",
		SubjectTemplate: "Order {{.orderId}} is {{.status}}",
		BodyTemplate:    "Hi {{.userName}}, your order {{.orderId}} is now {{.status}}.",
	}

	subject, body := Render(tmpl, map[string]any{
		"orderId":  "ORD-1",
		"status":   "shipped",
		"userName": "Amina",
	})

	if subject != "Order ORD-1 is shipped" {
		t.Errorf("subject = %q", subject)
	}
	if body != "Hi Amina, your order ORD-1 is now shipped." {
		t.Errorf("body = %q", body)
	}
}

func TestRenderMissingVariableFallsBack(t *testing.T) {
	tmpl := &models.NotificationTemplate{
		Name:            "order_status_update",
		SubjectTemplate: "Order {{.orderId}}",
		BodyTemplate:    "Status: {{.status}}",
	}

	subject, body := Render(tmpl, map[string]any{"orderId": "ORD-1"})

	if subject != fallbackSubject {
		t.Errorf("subject = %q, want fallback %q", subject, fallbackSubject)
	}
	if body != tmpl.BodyTemplate {
		t.Errorf("body = %q, want raw template text", body)
	}
}

func TestRenderBadSyntaxFallsBack(t *testing.T) {
	tmpl := &models.NotificationTemplate{
		Name:         "broken",
		BodyTemplate: "Hello {{.name",
	}

	subject, body := Render(tmpl, map[string]any{"name": "x"})

	if subject != fallbackSubject {
		t.Errorf("subject = %q, want fallback", subject)
	}
	if body != tmpl.BodyTemplate {
		t.Errorf("body = %q, want raw template text", body)
	}
}

func TestRenderEmptySubject(t *testing.T) {
	tmpl := &models.NotificationTemplate{
		Name:         "in_app_only",
		BodyTemplate: "You have {{.count}} new messages",
	}

	subject, body := Render(tmpl, map[string]any{"count": 3})

	if subject != "" {
		t.Errorf("subject = %q, want empty", subject)
	}
	if body != "You have 3 new messages" {
		t.Errorf("body = %q", body)
	}
}

func TestDefaultTemplatesParse(t *testing.T) {
	for _, tmpl := range DefaultTemplates() {
		data := map[string]any{}
		for name := range tmpl.Variables {
			data[name] = "x"
		}
		tm := tmpl
		subject, _ := Render(&tm, data)
		if subject == fallbackSubject && tm.SubjectTemplate != "" {
			t.Errorf("template %q failed to render with its declared variables", tm.Name)
		}
	}
}
