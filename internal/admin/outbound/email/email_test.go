package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/admin/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/mail"
)

type fakeMail struct {
	sent []mail.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) Close() error { return nil }

func TestMail_SendOTP(t *testing.T) {
	// Arrange
	client := &fakeMail{}
	m := New(client, instrument.NewNoop())

	// Act
	err := m.SendOTP(context.Background(), usecase.OTPMail{
		To:       "a@x.com",
		Code:     "012345",
		Context:  entity.OtpContextPasswordReset,
		TTL:      5 * time.Minute,
		Metadata: map[string]any{"intent": "forgot_password"},
	})

	// Assert
	if err != nil {
		t.Fatalf("SendOTP() error = %v", err)
	}
	if len(client.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(client.sent))
	}
	msg := client.sent[0]
	if msg.Subject != "Password Reset OTP: 012345" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "a@x.com" {
		t.Fatalf("to = %v", msg.To)
	}
	for _, want := range []string{"0 1 2 3 4 5", "<strong>5</strong> minutes", "password reset", "forgot_password"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("html body missing %q", want)
		}
	}
}

func TestMail_SendOTPFailure(t *testing.T) {
	// Arrange
	cause := errors.New("smtp: connection refused")
	m := New(&fakeMail{err: cause}, instrument.NewNoop())

	// Act
	err := m.SendOTP(context.Background(), usecase.OTPMail{To: "a@x.com", Code: "000001", Context: entity.OtpContextLogin, TTL: 30 * time.Second})

	// Assert
	if !errors.Is(err, cause) {
		t.Fatalf("SendOTP() error = %v, want %v", err, cause)
	}
}
