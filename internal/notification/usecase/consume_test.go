package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func submitted() ConsumeApplicationSubmittedInput {
	return ConsumeApplicationSubmittedInput{
		SubmissionID: 77,
		FormType:     "admission",
		FullName:     "Ada Lovelace",
		Email:        "ada@x.com",
		Payload:      map[string]any{"grade": "10"},
	}
}

func TestUsecase_ConsumeApplicationSubmitted(t *testing.T) {
	// Arrange
	e := newEnv(t, "office@x.com")
	streamCtx, cancel := context.WithCancel(authCtx(2))
	defer cancel()
	stream, err := e.uc.Stream(streamCtx)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}

	// Act
	err = e.uc.ConsumeApplicationSubmitted(context.Background(), submitted())

	// Assert
	if err != nil {
		t.Fatalf("ConsumeApplicationSubmitted() error = %v", err)
	}
	if len(e.repo.byRecipient(1)) != 1 || len(e.repo.byRecipient(2)) != 1 || len(e.repo.byRecipient(3)) != 0 {
		t.Fatal("expected one notification per active admin")
	}
	got := e.repo.byRecipient(1)[0]
	if got.Data.GetString("submission_id") != "77" || got.Message != "Ada Lovelace submitted the admission form" {
		t.Fatalf("notification = %+v", got)
	}
	select {
	case evt := <-stream:
		if evt.Title != "New application received" || evt.Data.GetString("form_type") != "admission" {
			t.Fatalf("stream event = %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("no stream event")
	}
	if e.mail.recipient != "office@x.com" || len(e.mail.sent) != 1 || e.mail.sent[0].ReceivedAt != testNow {
		t.Fatalf("mail = %+v", e.mail)
	}
}

func TestUsecase_ConsumeApplicationSubmittedEdges(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		mutate    func(e *env, in *ConsumeApplicationSubmittedInput)
		wantErr   bool
		wantMails int
		wantRows  int
	}{
		{name: "no recipient skips mail", wantRows: 2},
		{name: "mail failure is not retried", recipient: "office@x.com", mutate: func(e *env, _ *ConsumeApplicationSubmittedInput) {
			e.mail.err = errors.New("smtp down")
		}, wantMails: 1, wantRows: 2},
		{name: "malformed event is dropped", recipient: "office@x.com", mutate: func(_ *env, in *ConsumeApplicationSubmittedInput) {
			in.Email = "nope"
		}},
		{name: "storage failure is retried", recipient: "office@x.com", mutate: func(e *env, _ *ConsumeApplicationSubmittedInput) {
			e.repo.fail = errors.New("db down")
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := newEnv(t, tt.recipient)
			in := submitted()
			if tt.mutate != nil {
				tt.mutate(e, &in)
			}

			// Act
			err := e.uc.ConsumeApplicationSubmitted(context.Background(), in)

			// Assert
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(e.mail.sent) != tt.wantMails || len(e.repo.items) != tt.wantRows {
				t.Fatalf("mails = %d, rows = %d", len(e.mail.sent), len(e.repo.items))
			}
		})
	}
}

func TestUsecase_ConsumeCredentialChanged(t *testing.T) {
	tests := []struct {
		change    string
		wantTitle string
	}{
		{change: "password_reset", wantTitle: "Password reset"},
		{change: "password_change", wantTitle: "Password changed"},
		{change: "email_change", wantTitle: "Email changed"},
		{change: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.change, func(t *testing.T) {
			// Arrange
			e := newEnv(t, "")

			// Act
			err := e.uc.ConsumeCredentialChanged(context.Background(), ConsumeCredentialChangedInput{AdminID: 1, Email: "old@x.com", Change: tt.change})

			// Assert
			if err != nil {
				t.Fatalf("ConsumeCredentialChanged() error = %v", err)
			}
			got := e.repo.byRecipient(1)
			if tt.wantTitle == "" {
				if len(got) != 0 {
					t.Fatalf("unexpected notification %+v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Title != tt.wantTitle || got[0].Data.GetString("change") != tt.change {
				t.Fatalf("notifications = %+v", got)
			}
		})
	}
}

func TestUsecase_StreamClosesOnCancel(t *testing.T) {
	// Arrange
	e := newEnv(t, "")
	ctx, cancel := context.WithCancel(authCtx(1))
	stream, err := e.uc.Stream(ctx)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}

	// Act
	cancel()

	// Assert
	select {
	case _, ok := <-stream:
		if ok {
			t.Fatal("expected closed stream")
		}
	case <-time.After(time.Second):
		t.Fatal("stream not closed")
	}
}
