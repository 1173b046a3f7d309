package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/imaging"
)

type StaffListInput struct {
	Kind     entity.Kind
	IsActive *bool
	Page     int32
	Size     int32
}

type StaffListOutput struct {
	Page    int32
	Size    int32
	Total   int64
	Members []entity.StaffProfile
}

func (s *Usecase) StaffList(ctx context.Context, in StaffListInput) (*StaffListOutput, error) {
	ctx, span := s.startSpan(ctx, "StaffList")
	defer span.End()

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}
	page := max(in.Page, 1)

	items, total, err := s.repoDB.ListStaff(ctx, entity.StaffFilter{
		Kind:     in.Kind,
		IsActive: in.IsActive,
		Size:     in.Size,
		Offset:   (page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list staff", "kind", in.Kind, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &StaffListOutput{Page: page, Size: in.Size, Total: total, Members: items}, nil
}

// PublicStaff lists the active members of a directory in display order.
func (s *Usecase) PublicStaff(ctx context.Context, kind entity.Kind) ([]entity.StaffProfile, error) {
	ctx, span := s.startSpan(ctx, "PublicStaff")
	defer span.End()

	active := true
	items, _, err := s.repoDB.ListStaff(ctx, entity.StaffFilter{Kind: kind, IsActive: &active, Size: publicLimit})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list public staff", "kind", kind, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) StaffDetail(ctx context.Context, kind entity.Kind, id int64) (*entity.StaffProfile, error) {
	ctx, span := s.startSpan(ctx, "StaffDetail")
	defer span.End()

	return s.getStaff(ctx, kind, id)
}

type StaffCreateInput struct {
	Kind           entity.Kind `json:"-"`
	Name           string      `json:"name" validate:"required,max=255"`
	Position       string      `json:"position" validate:"required,max=255"`
	Designation    *string     `json:"designation" validate:"omitempty,max=255"`
	Bio            *string     `json:"bio"`
	Qualifications *string     `json:"qualifications"`
	Email          *string     `json:"email" validate:"omitempty,email,max=255"`
	Phone          *string     `json:"phone" validate:"omitempty,max=30"`
	Department     *string     `json:"department" validate:"omitempty,max=255"`
	Image          *string     `json:"image" validate:"omitempty,max=500"`
	ImageSize      *string     `json:"image_size" validate:"omitempty,oneof=small medium large"`
	Order          *int32      `json:"order" validate:"omitempty,min=0"`
	IsActive       *bool       `json:"is_active"`
}

func (s *Usecase) StaffCreate(ctx context.Context, in StaffCreateInput) (*entity.StaffProfile, error) {
	ctx, span := s.startSpan(ctx, "StaffCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Position = strings.TrimSpace(in.Position)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	p := entity.StaffProfile{
		ID:             s.uid.Generate(),
		Kind:           in.Kind,
		Name:           in.Name,
		Position:       &in.Position,
		Designation:    in.Designation,
		Bio:            in.Bio,
		Qualifications: in.Qualifications,
		Department:     in.Department,
		Image:          in.Image,
		ImageSize:      imaging.SizeMedium,
		IsActive:       in.IsActive == nil || *in.IsActive,
	}
	if in.Kind == entity.KindAcademicCouncil {
		p.Email, p.Phone = in.Email, in.Phone
	}
	if in.ImageSize != nil {
		p.ImageSize = imaging.ParseSize(*in.ImageSize)
	}
	if in.Order != nil {
		p.Order = *in.Order
	}

	if err := s.repoDB.CreateStaff(ctx, p); err != nil {
		slog.ErrorContext(ctx, "failed to repo create staff", "kind", in.Kind, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getStaff(ctx, p.Kind, p.ID)
}

type StaffUpdateInput struct {
	Kind           entity.Kind `json:"-"`
	ID             int64       `json:"-"`
	Name           *string     `json:"name" validate:"omitempty,min=1,max=255"`
	Position       *string     `json:"position" validate:"omitempty,min=1,max=255"`
	Designation    *string     `json:"designation" validate:"omitempty,max=255"`
	Bio            *string     `json:"bio"`
	Qualifications *string     `json:"qualifications"`
	Email          *string     `json:"email" validate:"omitempty,email,max=255"`
	Phone          *string     `json:"phone" validate:"omitempty,max=30"`
	Department     *string     `json:"department" validate:"omitempty,max=255"`
	Image          *string     `json:"image" validate:"omitempty,max=500"`
	ImageSize      *string     `json:"image_size" validate:"omitempty,oneof=small medium large"`
	Order          *int32      `json:"order" validate:"omitempty,min=0"`
	IsActive       *bool       `json:"is_active"`
}

// StaffUpdate merges the set fields. A new image link replaces a stored
// picture, whose object is then removed.
func (s *Usecase) StaffUpdate(ctx context.Context, in StaffUpdateInput) (*entity.StaffProfile, error) {
	ctx, span := s.startSpan(ctx, "StaffUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	p, err := s.getStaff(ctx, in.Kind, in.ID)
	if err != nil {
		return nil, err
	}

	var stale *string
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Position != nil {
		pos := strings.TrimSpace(*in.Position)
		p.Position = &pos
	}
	if in.Designation != nil {
		p.Designation = in.Designation
	}
	if in.Bio != nil {
		p.Bio = in.Bio
	}
	if in.Qualifications != nil {
		p.Qualifications = in.Qualifications
	}
	if in.Kind == entity.KindAcademicCouncil {
		if in.Email != nil {
			p.Email = in.Email
		}
		if in.Phone != nil {
			p.Phone = in.Phone
		}
	}
	if in.Department != nil {
		p.Department = in.Department
	}
	if in.Image != nil && (p.Image == nil || *p.Image != *in.Image) {
		stale = p.Image
		p.Image = in.Image
		p.ImageMime = nil
		p.ImageWidth, p.ImageHeight = nil, nil
	}
	if in.ImageSize != nil {
		p.ImageSize = imaging.ParseSize(*in.ImageSize)
	}
	if in.Order != nil {
		p.Order = *in.Order
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	err = s.repoDB.UpdateStaff(ctx, *p)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness(in.Kind.Label()+" not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update staff", "kind", in.Kind, "staff_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.dropImage(ctx, stale)

	return s.getStaff(ctx, in.Kind, in.ID)
}

func (s *Usecase) StaffDelete(ctx context.Context, kind entity.Kind, id int64) error {
	ctx, span := s.startSpan(ctx, "StaffDelete")
	defer span.End()

	image, err := s.repoDB.DeleteStaff(ctx, kind, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "staff to delete not found", "kind", kind, "staff_id", id)
		return goerror.NewBusiness(kind.Label()+" not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete staff", "kind", kind, "staff_id", id, "error", err)
		return goerror.NewServer(err)
	}

	s.dropImage(ctx, image)

	return nil
}

type StaffImageInput struct {
	Kind        entity.Kind `json:"-"`
	ID          int64       `json:"-"`
	ContentType string      `json:"-"`
	Data        []byte      `json:"-"`
	ImageSize   *string     `json:"image_size" validate:"omitempty,oneof=small medium large"`
	ImageWidth  *int        `json:"image_width" validate:"omitempty,min=50,max=2000"`
	ImageHeight *int        `json:"image_height" validate:"omitempty,min=50,max=2000"`
}

// StaffImageUpload resizes the picture to the requested box, stores it as
// JPEG and points the profile at the new object.
func (s *Usecase) StaffImageUpload(ctx context.Context, in StaffImageInput) (*entity.StaffProfile, error) {
	ctx, span := s.startSpan(ctx, "StaffImageUpload")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if err := checkImage(in.ContentType, in.Data); err != nil {
		return nil, err
	}

	p, err := s.getStaff(ctx, in.Kind, in.ID)
	if err != nil {
		return nil, err
	}

	size := string(p.ImageSize)
	if in.ImageSize != nil {
		size = *in.ImageSize
	}
	dim := imaging.Resolve(size, in.ImageWidth, in.ImageHeight)

	out, err := imaging.Resize(in.Data, dim)
	if errors.Is(err, imaging.ErrUnsupportedFormat) {
		return nil, goerror.NewInvalidInput(nil, "image", "The image must be a file of type: jpeg, png, jpg, gif, webp.")
	}
	if errors.Is(err, imaging.ErrTooLarge) {
		return nil, goerror.NewInvalidInput(nil, "image", "The image dimensions are too large.")
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to resize staff image", "staff_id", in.ID, "error", err)
		return nil, goerror.NewInvalidInput(nil, "image", "The image could not be processed.")
	}

	key := fmt.Sprintf("staff/%s/%d/%s.jpg", in.Kind, in.ID, s.objectID.Generate())
	if err := s.repoFile.PutImage(ctx, key, out, imaging.ContentType); err != nil {
		slog.ErrorContext(ctx, "failed to store staff image", "staff_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	stale := p.Image
	mime := imaging.ContentType
	p.Image = &key
	p.ImageMime = &mime
	p.ImageSize = dim.Size
	p.ImageWidth = &dim.Width
	p.ImageHeight = &dim.Height

	if err := s.repoDB.UpdateStaff(ctx, *p); err != nil {
		slog.ErrorContext(ctx, "failed to repo update staff image", "staff_id", in.ID, "error", err)
		s.dropImage(ctx, &key)
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness(in.Kind.Label()+" not found", goerror.CodeNotFound)
		}
		return nil, goerror.NewServer(err)
	}

	s.dropImage(ctx, stale)

	return s.getStaff(ctx, in.Kind, in.ID)
}

func checkImage(contentType string, data []byte) error {
	if _, ok := imageTypes[contentType]; !ok {
		return goerror.NewInvalidInput(nil, "image", "The image must be a file of type: jpeg, png, jpg, gif, webp.")
	}
	if len(data) > ImageMaxBytes {
		return goerror.NewInvalidInput(nil, "image", "The image may not be greater than 4096 kilobytes.")
	}
	return nil
}

// dropImage removes a stored picture. Remote links are left alone.
func (s *Usecase) dropImage(ctx context.Context, image *string) {
	if image == nil || *image == "" || entity.IsRemote(*image) {
		return
	}

	if err := s.repoFile.DeleteImage(ctx, *image); err != nil {
		slog.WarnContext(ctx, "failed to delete stale image", "key", *image, "error", err)
	}
}

func (s *Usecase) getStaff(ctx context.Context, kind entity.Kind, id int64) (*entity.StaffProfile, error) {
	p, err := s.repoDB.GetStaffByID(ctx, kind, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "staff not found", "kind", kind, "staff_id", id)
		return nil, goerror.NewBusiness(kind.Label()+" not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get staff by id", "kind", kind, "staff_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return p, nil
}
