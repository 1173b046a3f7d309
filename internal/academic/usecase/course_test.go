package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

func TestCourseCreate(t *testing.T) {
	tests := []struct {
		name     string
		in       CourseCreateInput
		wantCode goerror.Code
	}{
		{name: "missing title", in: CourseCreateInput{Code: "GO-1", DurationHours: 1}, wantCode: goerror.CodeInvalidInput},
		{name: "zero duration", in: CourseCreateInput{Title: "Go", Code: "GO-1"}, wantCode: goerror.CodeInvalidInput},
		{name: "negative price", in: CourseCreateInput{Title: "Go", Code: "GO-1", DurationHours: 1, Price: -1}, wantCode: goerror.CodeInvalidInput},
		{name: "unknown level", in: CourseCreateInput{Title: "Go", Code: "GO-1", DurationHours: 1, Level: "expert"}, wantCode: goerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := newEnv(t)

			// Act
			_, err := e.uc.CourseCreate(context.Background(), tt.in)

			// Assert
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestCourseCreate_Defaults(t *testing.T) {
	// Arrange
	e := newEnv(t)

	// Act
	c, err := e.uc.CourseCreate(context.Background(), CourseCreateInput{
		Title: "  Go Basics ", Code: " GO-101 ", DurationHours: 40, Price: valueobject.Money(150000),
	})

	// Assert
	if err != nil {
		t.Fatalf("CourseCreate() error = %v", err)
	}
	if c.Title != "Go Basics" || c.Code != "GO-101" || c.Level != entity.LevelBeginner || !c.IsActive || c.Price.String() != "1500.00" {
		t.Fatalf("CourseCreate() = %+v", c)
	}
}

func TestCourseCreate_DuplicateCode(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	_, _ = e.uc.CourseCreate(ctx, CourseCreateInput{Title: "Go", Code: "GO-101", DurationHours: 1})

	// Act
	_, err := e.uc.CourseCreate(ctx, CourseCreateInput{Title: "Go again", Code: "GO-101", DurationHours: 1})

	// Assert
	assertCode(t, err, goerror.CodeConflict)
}

func TestCourseUpdate_MergesFields(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	c, _ := e.uc.CourseCreate(ctx, CourseCreateInput{Title: "Go", Code: "GO-101", DurationHours: 10, Instructor: str("Rob")})
	level, inactive := "advanced", false

	// Act
	got, err := e.uc.CourseUpdate(ctx, CourseUpdateInput{ID: c.ID, Level: &level, IsActive: &inactive})
	_, errMissing := e.uc.CourseUpdate(ctx, CourseUpdateInput{ID: 1, Level: &level})

	// Assert
	if err != nil || got.Level != entity.LevelAdvanced || got.IsActive || got.Title != "Go" || *got.Instructor != "Rob" {
		t.Fatalf("CourseUpdate() = %+v, %v", got, err)
	}
	assertCode(t, errMissing, goerror.CodeNotFound)
}

func TestCourseDelete(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	busy, _ := e.uc.CourseCreate(ctx, CourseCreateInput{Title: "Go", Code: "GO-101", DurationHours: 1})
	free, _ := e.uc.CourseCreate(ctx, CourseCreateInput{Title: "Rust", Code: "RS-101", DurationHours: 1})
	st, _ := e.uc.StudentCreate(ctx, StudentCreateInput{FirstName: "Ada", LastName: "L", Email: "ada@x.com"})
	if _, err := e.uc.EnrollmentCreate(ctx, EnrollmentCreateInput{StudentID: st.ID, CourseID: busy.ID, EnrollmentDate: "2026-01-01"}); err != nil {
		t.Fatalf("EnrollmentCreate() error = %v", err)
	}

	// Act
	errBusy := e.uc.CourseDelete(ctx, busy.ID)
	errFree := e.uc.CourseDelete(ctx, free.ID)
	errAgain := e.uc.CourseDelete(ctx, free.ID)

	// Assert
	assertCode(t, errBusy, goerror.CodeInvalidInput)
	var gerr *goerror.Error
	if !errors.As(errBusy, &gerr) || gerr.Msg() != "Cannot delete course with existing enrollments" {
		t.Fatalf("busy delete = %v", errBusy)
	}
	if errFree != nil {
		t.Fatalf("CourseDelete() error = %v", errFree)
	}
	assertCode(t, errAgain, goerror.CodeNotFound)
}

func TestCourseList(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	for _, code := range []string{"A", "B", "C"} {
		_, _ = e.uc.CourseCreate(ctx, CourseCreateInput{Title: code, Code: code, DurationHours: 1})
	}
	bad := "expert"

	// Act
	out, err := e.uc.CourseList(ctx, CourseListInput{Page: 2, Size: 2})
	_, errLevel := e.uc.CourseList(ctx, CourseListInput{Level: &bad})
	e.repo.fail = errors.New("db down")
	_, errRepo := e.uc.CourseList(ctx, CourseListInput{})

	// Assert
	if err != nil || out.Total != 3 || len(out.Courses) != 1 || out.Page != 2 || out.Size != 2 {
		t.Fatalf("CourseList() = %+v, %v", out, err)
	}
	assertCode(t, errLevel, goerror.CodeInvalidInput)
	assertCode(t, errRepo, goerror.CodeInternal)
}
