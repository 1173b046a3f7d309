package db

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/imaging"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/pgtest"
)

func newDB(t *testing.T) *DB {
	t.Helper()
	return NewDB(pgtest.New(t), instrument.NewNoop())
}

func TestDB_StaffKindsAreSeparate(t *testing.T) {
	// Arrange
	s := newDB(t)
	ctx := context.Background()
	w, h := 300, 300
	img := "staff/management/1/a.jpg"
	for i, p := range []entity.StaffProfile{
		{ID: 1, Kind: entity.KindManagement, Name: "Second", Order: 2, IsActive: true, ImageSize: imaging.SizeMedium, Image: &img, ImageWidth: &w, ImageHeight: &h},
		{ID: 2, Kind: entity.KindManagement, Name: "First", Order: 1, IsActive: true, ImageSize: imaging.SizeSmall},
		{ID: 3, Kind: entity.KindAcademicCouncil, Name: "Council", IsActive: false, ImageSize: imaging.SizeLarge},
	} {
		if err := s.CreateStaff(ctx, p); err != nil {
			t.Fatalf("CreateStaff(%d) error = %v", i, err)
		}
	}
	active := true

	// Act
	mgmt, total, errList := s.ListStaff(ctx, entity.StaffFilter{Kind: entity.KindManagement, Size: 10})
	council, councilTotal, _ := s.ListStaff(ctx, entity.StaffFilter{Kind: entity.KindAcademicCouncil, IsActive: &active, Size: 10})
	_, errWrongKind := s.GetStaffByID(ctx, entity.KindAcademicCouncil, 1)
	got, errGet := s.GetStaffByID(ctx, entity.KindManagement, 1)
	removed, errDelete := s.DeleteStaff(ctx, entity.KindManagement, 1)

	// Assert
	if errList != nil || total != 2 || mgmt[0].Name != "First" {
		t.Fatalf("ListStaff(management) = %+v, %d, %v", mgmt, total, errList)
	}
	if councilTotal != 0 || len(council) != 0 {
		t.Fatalf("ListStaff(council, active) = %+v, %d", council, councilTotal)
	}
	if !errors.Is(errWrongKind, goerror.ErrNotFound) {
		t.Fatalf("cross-kind lookup = %v", errWrongKind)
	}
	if errGet != nil || got.ImageWidth == nil || *got.ImageWidth != 300 || got.ImageSize != imaging.SizeMedium {
		t.Fatalf("GetStaffByID() = %+v, %v", got, errGet)
	}
	if errDelete != nil || removed == nil || *removed != img {
		t.Fatalf("DeleteStaff() = %v, %v", removed, errDelete)
	}
}

func TestDB_Facilities(t *testing.T) {
	// Arrange
	s := newDB(t)
	ctx := context.Background()
	if err := s.CreateFacility(ctx, entity.Facility{ID: 1, Name: "Lab", Slug: "lab", Features: []string{"wifi", "projector"}, IsActive: true}); err != nil {
		t.Fatalf("CreateFacility() error = %v", err)
	}

	// Act
	dup := s.CreateFacility(ctx, entity.Facility{ID: 2, Name: "Lab", Slug: "lab", IsActive: true})
	noFeatures := s.CreateFacility(ctx, entity.Facility{ID: 3, Name: "Hall", Slug: "hall", IsActive: true})
	got, errGet := s.GetFacilityByID(ctx, 1)
	hall, _ := s.GetFacilityByID(ctx, 3)
	list, total, errList := s.ListFacilities(ctx, entity.FacilityFilter{Size: 10})
	errDelete := s.DeleteFacility(ctx, 1)
	errAgain := s.DeleteFacility(ctx, 1)

	// Assert
	if !errors.Is(dup, goerror.ErrConflict) || noFeatures != nil {
		t.Fatalf("create = %v, %v", dup, noFeatures)
	}
	if errGet != nil || len(got.Features) != 2 || got.Features[1] != "projector" {
		t.Fatalf("GetFacilityByID() = %+v, %v", got, errGet)
	}
	if len(hall.Features) != 0 {
		t.Fatalf("features default = %#v", hall.Features)
	}
	if errList != nil || total != 2 || len(list) != 2 {
		t.Fatalf("ListFacilities() = %d, %v", total, errList)
	}
	if errDelete != nil || !errors.Is(errAgain, goerror.ErrNotFound) {
		t.Fatalf("delete = %v, %v", errDelete, errAgain)
	}
}
