package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

type FacilityListInput struct {
	IsActive   *bool
	IsFeatured *bool
	Category   *string
	Page       int32
	Size       int32
}

type FacilityListOutput struct {
	Page       int32
	Size       int32
	Total      int64
	Facilities []entity.Facility
}

func (s *Usecase) FacilityList(ctx context.Context, in FacilityListInput) (*FacilityListOutput, error) {
	ctx, span := s.startSpan(ctx, "FacilityList")
	defer span.End()

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}
	page := max(in.Page, 1)

	items, total, err := s.repoDB.ListFacilities(ctx, entity.FacilityFilter{
		IsActive:   in.IsActive,
		IsFeatured: in.IsFeatured,
		Category:   in.Category,
		Size:       in.Size,
		Offset:     (page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list facilities", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &FacilityListOutput{Page: page, Size: in.Size, Total: total, Facilities: items}, nil
}

func (s *Usecase) PublicFacilities(ctx context.Context) ([]entity.Facility, error) {
	ctx, span := s.startSpan(ctx, "PublicFacilities")
	defer span.End()

	active := true
	items, _, err := s.repoDB.ListFacilities(ctx, entity.FacilityFilter{IsActive: &active, Size: publicLimit})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list public facilities", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}

func (s *Usecase) FacilityDetail(ctx context.Context, id int64) (*entity.Facility, error) {
	ctx, span := s.startSpan(ctx, "FacilityDetail")
	defer span.End()

	return s.getFacility(ctx, id)
}

type FacilityCreateInput struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description"`
	Image       *string  `json:"image" validate:"omitempty,max=500"`
	Icon        *string  `json:"icon" validate:"omitempty,max=100"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Capacity    *int32   `json:"capacity" validate:"omitempty,min=1"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	Features    []string `json:"features" validate:"omitempty,dive,max=255"`
	IsFeatured  *bool    `json:"is_featured"`
	Order       *int32   `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}

func (s *Usecase) FacilityCreate(ctx context.Context, in FacilityCreateInput) (*entity.Facility, error) {
	ctx, span := s.startSpan(ctx, "FacilityCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	f := entity.Facility{
		ID:          s.uid.Generate(),
		Name:        in.Name,
		Slug:        entity.Slugify(in.Name),
		Description: in.Description,
		Image:       in.Image,
		Icon:        in.Icon,
		Category:    in.Category,
		Capacity:    in.Capacity,
		Location:    in.Location,
		Features:    in.Features,
		IsFeatured:  in.IsFeatured != nil && *in.IsFeatured,
		IsActive:    in.IsActive == nil || *in.IsActive,
	}
	if f.Slug == "" {
		return nil, errSlugEmpty
	}
	if in.Order != nil {
		f.Order = *in.Order
	}

	err := s.repoDB.CreateFacility(ctx, f)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "facility slug already exists", "slug", f.Slug)
		return nil, errSlugTaken
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create facility", "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getFacility(ctx, f.ID)
}

type FacilityUpdateInput struct {
	ID          int64    `json:"-"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Image       *string  `json:"image" validate:"omitempty,max=500"`
	Icon        *string  `json:"icon" validate:"omitempty,max=100"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Capacity    *int32   `json:"capacity" validate:"omitempty,min=1"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	Features    []string `json:"features" validate:"omitempty,dive,max=255"`
	IsFeatured  *bool    `json:"is_featured"`
	Order       *int32   `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}

// FacilityUpdate merges the set fields. A rename moves the slug; an image link
// replaces inline picture data.
func (s *Usecase) FacilityUpdate(ctx context.Context, in FacilityUpdateInput) (*entity.Facility, error) {
	ctx, span := s.startSpan(ctx, "FacilityUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	f, err := s.getFacility(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		f.Name = strings.TrimSpace(*in.Name)
		f.Slug = entity.Slugify(f.Name)
		if f.Slug == "" {
			return nil, errSlugEmpty
		}
	}
	if in.Description != nil {
		f.Description = in.Description
	}
	if in.Image != nil {
		f.Image = in.Image
		f.ImageData, f.ImageMime = nil, nil
	}
	if in.Icon != nil {
		f.Icon = in.Icon
	}
	if in.Category != nil {
		f.Category = in.Category
	}
	if in.Capacity != nil {
		f.Capacity = in.Capacity
	}
	if in.Location != nil {
		f.Location = in.Location
	}
	if in.Features != nil {
		f.Features = in.Features
	}
	if in.IsFeatured != nil {
		f.IsFeatured = *in.IsFeatured
	}
	if in.Order != nil {
		f.Order = *in.Order
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}

	err = s.repoDB.UpdateFacility(ctx, *f)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "facility slug already exists", "slug", f.Slug)
		return nil, errSlugTaken
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Facility not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update facility", "facility_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getFacility(ctx, in.ID)
}

func (s *Usecase) FacilityDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "FacilityDelete")
	defer span.End()

	err := s.repoDB.DeleteFacility(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "facility to delete not found", "facility_id", id)
		return goerror.NewBusiness("Facility not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete facility", "facility_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type FacilityImageInput struct {
	ID          int64
	ContentType string
	Data        []byte
}

// FacilityImageUpload keeps the picture inline as base64 next to its mime type.
func (s *Usecase) FacilityImageUpload(ctx context.Context, in FacilityImageInput) (*entity.Facility, error) {
	ctx, span := s.startSpan(ctx, "FacilityImageUpload")
	defer span.End()

	if err := checkImage(in.ContentType, in.Data); err != nil {
		return nil, err
	}

	f, err := s.getFacility(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	data := base64.StdEncoding.EncodeToString(in.Data)
	mime := in.ContentType
	f.Image, f.ImageData, f.ImageMime = nil, &data, &mime

	err = s.repoDB.UpdateFacility(ctx, *f)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Facility not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update facility image", "facility_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.getFacility(ctx, in.ID)
}

var (
	errSlugEmpty = goerror.NewInvalidInput(nil, "name", "The name must contain letters or digits.")
	errSlugTaken = goerror.NewBusiness("A facility with this name already exists", goerror.CodeConflict)
)

func (s *Usecase) getFacility(ctx context.Context, id int64) (*entity.Facility, error) {
	f, err := s.repoDB.GetFacilityByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "facility not found", "facility_id", id)
		return nil, goerror.NewBusiness("Facility not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get facility by id", "facility_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return f, nil
}
