package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/shandysiswandi/academia/internal/pkg/mail"
	"github.com/shandysiswandi/academia/internal/setting/entity"
)

const defaultSenderAddress = "no-reply@example.com"

// SMTP is the effective outgoing mail configuration.
type SMTP struct {
	mail.SMTPConfig
	// Recipient receives application submission notices.
	Recipient string
}

// ResolveSMTP merges the smtp settings group over the mail.* config values.
// A failed lookup falls back to config alone.
func (s *Usecase) ResolveSMTP(ctx context.Context) (*SMTP, error) {
	ctx, span := s.startSpan(ctx, "ResolveSMTP")
	defer span.End()

	items, err := s.repoDB.ListSettingsByGroup(ctx, entity.GroupSMTP, false)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(items))
	for i := range items {
		s.reveal(ctx, &items[i])
		if v := items[i].Value; v != nil && strings.TrimSpace(*v) != "" {
			values[items[i].Key] = strings.TrimSpace(*v)
		}
	}

	pick := func(key, fallbackKey string) string {
		if v, ok := values[key]; ok {
			return v
		}
		return s.cfg.GetString(fallbackKey)
	}

	port, err := strconv.Atoi(pick("smtp.port", "mail.port"))
	if err != nil || port <= 0 {
		port = s.cfg.GetInt("mail.port")
	}

	out := &SMTP{
		SMTPConfig: mail.SMTPConfig{
			Host:       pick("smtp.host", "mail.host"),
			Port:       port,
			Username:   pick("smtp.username", "mail.username"),
			Password:   pick("smtp.password", "mail.password"),
			Encryption: pick("smtp.encryption", "mail.encryption"),
			From:       pick("smtp.from_address", "mail.from"),
			FromName:   pick("smtp.from_name", "mail.from_name"),
			Attempts:   uint64(max(s.cfg.GetInt("mail.attempts"), 1)),
			Timeout:    s.cfg.GetSecond("mail.timeout_seconds"),
		},
	}
	if out.From == "" {
		out.From = defaultSenderAddress
	}
	out.Recipient = pick("smtp.recipient_address", "mail.recipient")
	if out.Recipient == "" {
		out.Recipient = out.From
	}

	return out, nil
}
