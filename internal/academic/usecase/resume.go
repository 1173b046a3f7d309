package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

// ResumeMaxBytes bounds an uploaded resume.
const ResumeMaxBytes = 2 << 20

var resumeExtensions = map[string]string{
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
}

type ResumeUploadInput struct {
	StudentID   int64
	ContentType string
	Data        []byte
}

// StudentResumeUpload stores the file under a fresh key and then drops the
// previous object.
func (s *Usecase) StudentResumeUpload(ctx context.Context, in ResumeUploadInput) (string, error) {
	ctx, span := s.startSpan(ctx, "StudentResumeUpload")
	defer span.End()

	ext, ok := resumeExtensions[in.ContentType]
	if !ok {
		return "", goerror.NewInvalidInput(nil, "resume", "The resume must be a file of type: pdf, doc, docx.")
	}
	if len(in.Data) > ResumeMaxBytes {
		return "", goerror.NewInvalidInput(nil, "resume", "The resume may not be greater than 2048 kilobytes.")
	}

	st, err := s.getStudent(ctx, in.StudentID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("resumes/%d/%s.%s", st.ID, s.objectID.Generate(), ext)
	if err := s.repoFile.PutResume(ctx, key, in.Data, in.ContentType); err != nil {
		slog.ErrorContext(ctx, "failed to store resume", "student_id", st.ID, "error", err)
		return "", goerror.NewServer(err)
	}

	err = s.repoDB.SetStudentResume(ctx, st.ID, &key)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo set student resume", "student_id", st.ID, "error", err)
		if errDel := s.repoFile.DeleteResume(ctx, key); errDel != nil {
			slog.WarnContext(ctx, "failed to remove orphan resume", "key", key, "error", errDel)
		}
		if errors.Is(err, goerror.ErrNotFound) {
			return "", goerror.NewBusiness("Student not found", goerror.CodeNotFound)
		}
		return "", goerror.NewServer(err)
	}

	if st.ResumePath != nil {
		if err := s.repoFile.DeleteResume(ctx, *st.ResumePath); err != nil {
			slog.WarnContext(ctx, "failed to delete previous resume", "key", *st.ResumePath, "error", err)
		}
	}

	return key, nil
}

type ResumeFile struct {
	Body        io.ReadCloser
	Name        string
	ContentType string
	Size        int64
}

// StudentResumeDownload opens the stored resume. The caller closes Body.
func (s *Usecase) StudentResumeDownload(ctx context.Context, studentID int64) (*ResumeFile, error) {
	ctx, span := s.startSpan(ctx, "StudentResumeDownload")
	defer span.End()

	st, err := s.getStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if st.ResumePath == nil {
		return nil, goerror.NewBusiness("No resume found", goerror.CodeNotFound)
	}

	body, obj, err := s.repoFile.OpenResume(ctx, *st.ResumePath)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "resume object missing", "student_id", studentID, "key", *st.ResumePath)
		return nil, goerror.NewBusiness("No resume found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to open resume", "student_id", studentID, "error", err)
		return nil, goerror.NewServer(err)
	}

	ext := ""
	if e, ok := resumeExtensions[obj.ContentType]; ok {
		ext = "." + e
	}

	return &ResumeFile{
		Body:        body,
		Name:        fmt.Sprintf("resume-%d%s", st.ID, ext),
		ContentType: obj.ContentType,
		Size:        obj.Size,
	}, nil
}

func (s *Usecase) StudentResumeDelete(ctx context.Context, studentID int64) error {
	ctx, span := s.startSpan(ctx, "StudentResumeDelete")
	defer span.End()

	st, err := s.getStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if st.ResumePath == nil {
		return goerror.NewBusiness("No resume found", goerror.CodeNotFound)
	}

	if err := s.repoDB.SetStudentResume(ctx, studentID, nil); err != nil {
		slog.ErrorContext(ctx, "failed to repo clear student resume", "student_id", studentID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoFile.DeleteResume(ctx, *st.ResumePath); err != nil {
		slog.WarnContext(ctx, "failed to delete resume object", "key", *st.ResumePath, "error", err)
	}

	return nil
}
