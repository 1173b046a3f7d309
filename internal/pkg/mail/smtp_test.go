package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewSMTP(t *testing.T) {
	tests := []struct {
		name     string
		cfg      SMTPConfig
		wantErr  error
		wantFrom string
	}{
		{name: "missing host", cfg: SMTPConfig{Port: 587}, wantErr: ErrSMTPHostPortRequired},
		{name: "missing port", cfg: SMTPConfig{Host: "smtp.test"}, wantErr: ErrSMTPHostPortRequired},
		{name: "plain from", cfg: SMTPConfig{Host: "smtp.test", Port: 587, From: "noreply@academia.test"}, wantFrom: "noreply@academia.test"},
		{name: "named from", cfg: SMTPConfig{Host: "smtp.test", Port: 587, From: "noreply@academia.test", FromName: "Academia"}, wantFrom: `"Academia" <noreply@academia.test>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			s, err := NewSMTP(tt.cfg)

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSMTP() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && s.from != tt.wantFrom {
				t.Fatalf("from = %q, want %q", s.from, tt.wantFrom)
			}
		})
	}
}

func TestSMTP_SendValidation(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "smtp.test", Port: 587})
	if err != nil {
		t.Fatalf("NewSMTP() error = %v", err)
	}

	if err := s.Send(context.Background(), Message{From: "a@test"}); !errors.Is(err, ErrSMTPNoRecipients) {
		t.Fatalf("Send() error = %v, want %v", err, ErrSMTPNoRecipients)
	}
	if err := s.Send(context.Background(), Message{To: []string{"b@test"}}); !errors.Is(err, ErrSMTPNoSender) {
		t.Fatalf("Send() error = %v, want %v", err, ErrSMTPNoSender)
	}
}

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name        string
		msg         Message
		contentType string
	}{
		{name: "text", msg: Message{To: []string{"a@test"}, Subject: "Your code", TextBody: "123456"}, contentType: "text/plain"},
		{name: "html", msg: Message{To: []string{"a@test"}, Subject: "Your code", HTMLBody: "<b>123456</b>"}, contentType: "text/html"},
		{name: "alternative", msg: Message{To: []string{"a@test"}, Cc: []string{"c@test"}, Subject: "Your code", TextBody: "123456", HTMLBody: "<b>123456</b>"}, contentType: "multipart/alternative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			raw := string(buildMessage("noreply@academia.test", tt.msg))

			// Assert
			if !strings.Contains(raw, "Content-Type: "+tt.contentType) {
				t.Fatalf("missing content type %q in:\n%s", tt.contentType, raw)
			}
			if !strings.Contains(raw, "Subject: Your code\r\n") {
				t.Fatalf("missing subject in:\n%s", raw)
			}
			if len(tt.msg.Cc) > 0 && !strings.Contains(raw, "Cc: c@test\r\n") {
				t.Fatalf("missing cc in:\n%s", raw)
			}
		})
	}
}
