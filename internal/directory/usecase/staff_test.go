package usecase

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/imaging"
)

func TestUsecase_StaffCreate(t *testing.T) {
	tests := []struct {
		name      string
		in        StaffCreateInput
		wantCode  goerror.Code
		wantEmail bool
	}{
		{
			name:     "management drops council fields",
			in:       StaffCreateInput{Kind: entity.KindManagement, Name: " Jane ", Position: "Director", Email: str("jane@x.com")},
			wantCode: -1,
		},
		{
			name:      "council keeps email",
			in:        StaffCreateInput{Kind: entity.KindAcademicCouncil, Name: "Joe", Position: "Chair", Email: str("joe@x.com")},
			wantCode:  -1,
			wantEmail: true,
		},
		{
			name:     "missing position",
			in:       StaffCreateInput{Kind: entity.KindManagement, Name: "Jane"},
			wantCode: goerror.CodeInvalidInput,
		},
		{
			name:     "bad image size",
			in:       StaffCreateInput{Kind: entity.KindManagement, Name: "Jane", Position: "Director", ImageSize: str("huge")},
			wantCode: goerror.CodeInvalidInput,
		},
		{
			name:     "bad email",
			in:       StaffCreateInput{Kind: entity.KindAcademicCouncil, Name: "Joe", Position: "Chair", Email: str("nope")},
			wantCode: goerror.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := newEnv(t)

			// Act
			got, err := e.uc.StaffCreate(context.Background(), tt.in)

			// Assert
			if tt.wantCode >= 0 {
				assertCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("StaffCreate() error = %v", err)
			}
			if got.Name != strings.TrimSpace(tt.in.Name) || !got.IsActive || got.ImageSize != imaging.SizeMedium {
				t.Fatalf("StaffCreate() = %+v", got)
			}
			if (got.Email != nil) != tt.wantEmail {
				t.Fatalf("email = %v, want set %v", got.Email, tt.wantEmail)
			}
		})
	}
}

func TestUsecase_StaffKindsAreSeparate(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	p, err := e.uc.StaffCreate(ctx, StaffCreateInput{Kind: entity.KindManagement, Name: "Jane", Position: "Director"})
	if err != nil {
		t.Fatalf("StaffCreate() error = %v", err)
	}

	// Act
	_, errDetail := e.uc.StaffDetail(ctx, entity.KindAcademicCouncil, p.ID)
	errDelete := e.uc.StaffDelete(ctx, entity.KindAcademicCouncil, p.ID)
	list, _ := e.uc.StaffList(ctx, StaffListInput{Kind: entity.KindAcademicCouncil})

	// Assert
	assertCode(t, errDetail, goerror.CodeNotFound)
	assertCode(t, errDelete, goerror.CodeNotFound)
	if list.Total != 0 || list.Size != 10 || list.Page != 1 {
		t.Fatalf("StaffList() = %+v", list)
	}
}

func TestUsecase_PublicStaff(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	off := false
	for i, name := range []string{"C", "A", "B"} {
		order := int32(3 - i)
		in := StaffCreateInput{Kind: entity.KindManagement, Name: name, Position: "P", Order: &order}
		if name == "B" {
			in.IsActive = &off
		}
		if _, err := e.uc.StaffCreate(ctx, in); err != nil {
			t.Fatalf("StaffCreate() error = %v", err)
		}
	}

	// Act
	got, err := e.uc.PublicStaff(ctx, entity.KindManagement)

	// Assert
	if err != nil || len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Fatalf("PublicStaff() = %+v, %v", got, err)
	}
}

func TestUsecase_StaffImageUpload(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	p, _ := e.uc.StaffCreate(ctx, StaffCreateInput{Kind: entity.KindManagement, Name: "Jane", Position: "Director", ImageSize: str("small")})
	width := 120

	// Act
	first, errFirst := e.uc.StaffImageUpload(ctx, StaffImageInput{
		Kind: entity.KindManagement, ID: p.ID, ContentType: "image/png", Data: pngOf(t, 64, 48), ImageWidth: &width,
	})
	firstKey := *first.Image
	second, errSecond := e.uc.StaffImageUpload(ctx, StaffImageInput{
		Kind: entity.KindManagement, ID: p.ID, ContentType: "image/png", Data: pngOf(t, 64, 48), ImageSize: str("large"),
	})

	// Assert
	if errFirst != nil || *first.ImageWidth != 120 || *first.ImageHeight != 150 || first.ImageSize != imaging.SizeSmall {
		t.Fatalf("first upload = %+v, %v", first, errFirst)
	}
	if !strings.HasPrefix(firstKey, "staff/management/") || !strings.HasSuffix(firstKey, ".jpg") {
		t.Fatalf("object key = %q", firstKey)
	}
	if errSecond != nil || *second.ImageWidth != 600 || second.ImageSize != imaging.SizeLarge || *second.ImageMime != "image/jpeg" {
		t.Fatalf("second upload = %+v, %v", second, errSecond)
	}
	if e.exists(firstKey) || !e.exists(*second.Image) {
		t.Fatal("replaced picture was not removed from storage")
	}

	rc, obj, err := e.store.Get(ctx, *second.Image)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer rc.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(rc)
	cfg, err := jpeg.DecodeConfig(&buf)
	if err != nil || cfg.Width != 600 || cfg.Height != 600 || obj.ContentType != "image/jpeg" {
		t.Fatalf("stored image = %+v, %v", cfg, err)
	}
}

func TestUsecase_StaffImageUploadRejects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p, _ := e.uc.StaffCreate(ctx, StaffCreateInput{Kind: entity.KindManagement, Name: "Jane", Position: "Director"})
	tiny := 10

	tests := []struct {
		name string
		in   StaffImageInput
		want goerror.Code
	}{
		{name: "pdf", in: StaffImageInput{Kind: entity.KindManagement, ID: p.ID, ContentType: "application/pdf", Data: []byte("%PDF")}, want: goerror.CodeInvalidInput},
		{name: "too large", in: StaffImageInput{Kind: entity.KindManagement, ID: p.ID, ContentType: "image/png", Data: make([]byte, ImageMaxBytes+1)}, want: goerror.CodeInvalidInput},
		{name: "width below minimum", in: StaffImageInput{Kind: entity.KindManagement, ID: p.ID, ContentType: "image/png", Data: pngOf(t, 8, 8), ImageWidth: &tiny}, want: goerror.CodeInvalidInput},
		{name: "oversized dimensions", in: StaffImageInput{Kind: entity.KindManagement, ID: p.ID, ContentType: "image/png", Data: hugePNG(t)}, want: goerror.CodeInvalidInput},
		{name: "corrupt png", in: StaffImageInput{Kind: entity.KindManagement, ID: p.ID, ContentType: "image/png", Data: []byte("\x89PNG broken")}, want: goerror.CodeInvalidInput},
		{name: "unknown member", in: StaffImageInput{Kind: entity.KindManagement, ID: 1, ContentType: "image/png", Data: pngOf(t, 8, 8)}, want: goerror.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			_, err := e.uc.StaffImageUpload(ctx, tt.in)

			// Assert
			assertCode(t, err, tt.want)
		})
	}
}

func TestUsecase_StaffUpdateAndDelete(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	p, _ := e.uc.StaffCreate(ctx, StaffCreateInput{Kind: entity.KindAcademicCouncil, Name: "Joe", Position: "Chair"})
	up, err := e.uc.StaffImageUpload(ctx, StaffImageInput{Kind: entity.KindAcademicCouncil, ID: p.ID, ContentType: "image/png", Data: pngOf(t, 20, 20)})
	if err != nil {
		t.Fatalf("StaffImageUpload() error = %v", err)
	}
	stored := *up.Image
	inactive := false

	// Act
	got, errUpdate := e.uc.StaffUpdate(ctx, StaffUpdateInput{
		Kind: entity.KindAcademicCouncil, ID: p.ID, Phone: str("+62 811"), Image: str("https://cdn.example.com/joe.png"), IsActive: &inactive,
	})
	errDelete := e.uc.StaffDelete(ctx, entity.KindAcademicCouncil, p.ID)
	_, errGone := e.uc.StaffDetail(ctx, entity.KindAcademicCouncil, p.ID)

	// Assert
	if errUpdate != nil || *got.Phone != "+62 811" || got.IsActive || got.ImageMime != nil || got.Name != "Joe" {
		t.Fatalf("StaffUpdate() = %+v, %v", got, errUpdate)
	}
	if e.exists(stored) {
		t.Fatal("stored picture kept after switching to a link")
	}
	if errDelete != nil {
		t.Fatalf("StaffDelete() error = %v", errDelete)
	}
	assertCode(t, errGone, goerror.CodeNotFound)
}

func TestUsecase_StaffRepoFailure(t *testing.T) {
	// Arrange
	e := newEnv(t)
	e.repo.fail = errors.New("db down")

	// Act
	_, errList := e.uc.StaffList(context.Background(), StaffListInput{Kind: entity.KindManagement})
	_, errPublic := e.uc.PublicStaff(context.Background(), entity.KindManagement)

	// Assert
	assertCode(t, errList, goerror.CodeInternal)
	assertCode(t, errPublic, goerror.CodeInternal)
}
