package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed template/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "template/*.html"))

// ApplicationNotice is the content of the mail sent for a new submission.
type ApplicationNotice struct {
	SubmissionID int64
	FormType     string
	FullName     string
	Email        string
	Phone        string
	Title        string
	Payload      map[string]any
	ReceivedAt   time.Time
}

type field struct {
	Label string
	Value string
}

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

// SendApplicationNotice renders the submission summary and mails it to recipient.
func (m *Mail) SendApplicationNotice(ctx context.Context, recipient string, n ApplicationNotice) error {
	ctx, span := m.ins.Tracer("notification.outbound.email").Start(ctx, "SendApplicationNotice")
	defer span.End()

	body, err := renderApplicationNotice(n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	msg := mail.Message{
		To:       []string{recipient},
		Subject:  fmt.Sprintf("New %s submission from %s", labelOf(n.FormType), n.FullName),
		HTMLBody: body,
	}
	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func renderApplicationNotice(n ApplicationNotice) (string, error) {
	keys := make([]string, 0, len(n.Payload))
	for k := range n.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]field, 0, len(keys))
	for _, k := range keys {
		v := n.Payload[k]
		if v == nil {
			continue
		}
		fields = append(fields, field{Label: labelOf(k), Value: fmt.Sprint(v)})
	}

	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "application_submitted.html", map[string]any{
		"FullName":   n.FullName,
		"FormLabel":  labelOf(n.FormType),
		"ReceivedAt": n.ReceivedAt.Format("02 Jan 2006, 03:04 PM MST"),
		"Email":      n.Email,
		"Phone":      n.Phone,
		"Title":      n.Title,
		"Fields":     fields,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func labelOf(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
