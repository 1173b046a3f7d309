package usecase

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

func TestStudentCreate(t *testing.T) {
	tests := []struct {
		name     string
		in       StudentCreateInput
		wantCode goerror.Code
	}{
		{name: "invalid email", in: StudentCreateInput{FirstName: "A", LastName: "B", Email: "nope"}, wantCode: goerror.CodeInvalidInput},
		{name: "long phone", in: StudentCreateInput{FirstName: "A", LastName: "B", Email: "a@x.com", Phone: str(strings.Repeat("1", 21))}, wantCode: goerror.CodeInvalidInput},
		{name: "bad birth date", in: StudentCreateInput{FirstName: "A", LastName: "B", Email: "a@x.com", DateOfBirth: str("2000-13-01")}, wantCode: goerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := newEnv(t)

			// Act
			_, err := e.uc.StudentCreate(context.Background(), tt.in)

			// Assert
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestStudentCreate_NormalizesAndRejectsDuplicates(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()

	// Act
	st, err := e.uc.StudentCreate(ctx, StudentCreateInput{FirstName: " Ada ", LastName: "Lovelace", Email: " Ada@X.com", DateOfBirth: str("1990-12-10")})
	_, errDup := e.uc.StudentCreate(ctx, StudentCreateInput{FirstName: "Ada", LastName: "Byron", Email: "ada@x.com"})

	// Assert
	if err != nil || st.Email != "ada@x.com" || st.FullName() != "Ada Lovelace" || !st.IsActive {
		t.Fatalf("StudentCreate() = %+v, %v", st, err)
	}
	if st.DateOfBirth == nil || st.DateOfBirth.Format("2006-01-02") != "1990-12-10" {
		t.Fatalf("date_of_birth = %v", st.DateOfBirth)
	}
	assertCode(t, errDup, goerror.CodeConflict)
}

func TestStudentResume_Lifecycle(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	st, _ := e.uc.StudentCreate(ctx, StudentCreateInput{FirstName: "Ada", LastName: "L", Email: "ada@x.com"})
	pdf := []byte("%PDF-1.4 first")

	// Act
	firstKey, errFirst := e.uc.StudentResumeUpload(ctx, ResumeUploadInput{StudentID: st.ID, ContentType: "application/pdf", Data: pdf})
	secondKey, errSecond := e.uc.StudentResumeUpload(ctx, ResumeUploadInput{StudentID: st.ID, ContentType: "application/pdf", Data: []byte("%PDF-1.4 second")})
	file, errDownload := e.uc.StudentResumeDownload(ctx, st.ID)

	// Assert
	if errFirst != nil || errSecond != nil || firstKey == secondKey {
		t.Fatalf("uploads = %q/%v, %q/%v", firstKey, errFirst, secondKey, errSecond)
	}
	if !strings.HasPrefix(secondKey, "resumes/") || !strings.HasSuffix(secondKey, ".pdf") {
		t.Fatalf("key = %q", secondKey)
	}
	if _, _, err := e.store.Get(ctx, firstKey); err == nil {
		t.Fatal("previous resume was not removed")
	}
	if errDownload != nil {
		t.Fatalf("StudentResumeDownload() error = %v", errDownload)
	}
	data, _ := io.ReadAll(file.Body)
	_ = file.Body.Close()
	if !bytes.Equal(data, []byte("%PDF-1.4 second")) || file.ContentType != "application/pdf" || !strings.HasSuffix(file.Name, ".pdf") {
		t.Fatalf("download = %q %+v", data, file)
	}

	// Act
	errDelete := e.uc.StudentResumeDelete(ctx, st.ID)
	_, errGone := e.uc.StudentResumeDownload(ctx, st.ID)

	// Assert
	if errDelete != nil {
		t.Fatalf("StudentResumeDelete() error = %v", errDelete)
	}
	assertCode(t, errGone, goerror.CodeNotFound)
	if _, _, err := e.store.Get(ctx, secondKey); err == nil {
		t.Fatal("resume object kept after delete")
	}
}

func TestStudentResumeUpload_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   ResumeUploadInput
		want goerror.Code
	}{
		{name: "image", in: ResumeUploadInput{ContentType: "image/png", Data: []byte("x")}, want: goerror.CodeInvalidInput},
		{name: "too large", in: ResumeUploadInput{ContentType: "application/pdf", Data: make([]byte, ResumeMaxBytes+1)}, want: goerror.CodeInvalidInput},
		{name: "unknown student", in: ResumeUploadInput{StudentID: 9, ContentType: "application/pdf", Data: []byte("%PDF")}, want: goerror.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := newEnv(t)

			// Act
			_, err := e.uc.StudentResumeUpload(context.Background(), tt.in)

			// Assert
			assertCode(t, err, tt.want)
		})
	}
}

func TestStudentDelete_RemovesResume(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	st, _ := e.uc.StudentCreate(ctx, StudentCreateInput{FirstName: "Ada", LastName: "L", Email: "ada@x.com"})
	key, _ := e.uc.StudentResumeUpload(ctx, ResumeUploadInput{StudentID: st.ID, ContentType: "application/pdf", Data: []byte("%PDF")})

	// Act
	err := e.uc.StudentDelete(ctx, st.ID)
	_, errNoResume := e.uc.StudentResumeDownload(ctx, st.ID)

	// Assert
	if err != nil {
		t.Fatalf("StudentDelete() error = %v", err)
	}
	if _, _, errGet := e.store.Get(ctx, key); errGet == nil {
		t.Fatal("resume object kept after student delete")
	}
	assertCode(t, errNoResume, goerror.CodeNotFound)
}
