package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/shandysiswandi/academia/internal/admin/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

var otpTemplate = template.Must(template.New("otp").Option("missingkey=zero").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>{{.Purpose}} OTP</title></head>
<body style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;background-color:#f5f5f7;color:#1c1c1e;">
<div style="max-width:560px;margin:40px auto;background:#ffffff;border-radius:18px;padding:32px;">
<h1 style="margin-top:0;font-size:24px;color:#0f172a;">{{.Purpose}} Verification</h1>
<p>Hello,</p>
<p>Your one-time password (OTP) for <strong>{{.PurposeLower}}</strong> is:</p>
<div style="font-size:32px;letter-spacing:0.25em;text-align:center;font-weight:700;background-color:#f1f5f9;border-radius:12px;padding:16px 0;margin:24px 0;">{{.SpacedCode}}</div>
<p>This code is valid for <strong>{{.Minutes}}</strong> minute{{if gt .Minutes 1}}s{{end}}.</p>
{{if .Intent}}<p style="font-size:14px;color:#64748b;">Request context: {{.Intent}}</p>{{end}}
<p>If you didn't request this OTP, please ignore this email. Your account remains secure.</p>
</div>
</body>
</html>`))

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) SendOTP(ctx context.Context, msg usecase.OTPMail) error {
	ctx, span := m.ins.Tracer("admin.outbound.email").Start(ctx, "SendOTP")
	defer span.End()

	purpose := msg.Context.Purpose()
	minutes := max(1, int(msg.TTL.Minutes()))
	intent, _ := msg.Metadata["intent"].(string)

	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, map[string]any{
		"Purpose":      purpose,
		"PurposeLower": strings.ToLower(purpose),
		"SpacedCode":   strings.Join(strings.Split(msg.Code, ""), " "),
		"Minutes":      minutes,
		"Intent":       intent,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Send(ctx, mail.Message{
		To:       []string{msg.To},
		Subject:  fmt.Sprintf("%s OTP: %s", purpose, msg.Code),
		TextBody: fmt.Sprintf("Your %s code is %s. It is valid for %d minute(s).", strings.ToLower(purpose), msg.Code, minutes),
		HTMLBody: body.String(),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
