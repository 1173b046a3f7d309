package inbound

import (
	"context"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/directory/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type uc interface {
	StaffList(ctx context.Context, in usecase.StaffListInput) (*usecase.StaffListOutput, error)
	StaffDetail(ctx context.Context, kind entity.Kind, id int64) (*entity.StaffProfile, error)
	StaffCreate(ctx context.Context, in usecase.StaffCreateInput) (*entity.StaffProfile, error)
	StaffUpdate(ctx context.Context, in usecase.StaffUpdateInput) (*entity.StaffProfile, error)
	StaffDelete(ctx context.Context, kind entity.Kind, id int64) error
	StaffImageUpload(ctx context.Context, in usecase.StaffImageInput) (*entity.StaffProfile, error)
	PublicStaff(ctx context.Context, kind entity.Kind) ([]entity.StaffProfile, error)

	FacilityList(ctx context.Context, in usecase.FacilityListInput) (*usecase.FacilityListOutput, error)
	FacilityDetail(ctx context.Context, id int64) (*entity.Facility, error)
	FacilityCreate(ctx context.Context, in usecase.FacilityCreateInput) (*entity.Facility, error)
	FacilityUpdate(ctx context.Context, in usecase.FacilityUpdateInput) (*entity.Facility, error)
	FacilityDelete(ctx context.Context, id int64) error
	FacilityImageUpload(ctx context.Context, in usecase.FacilityImageInput) (*entity.Facility, error)
	PublicFacilities(ctx context.Context) ([]entity.Facility, error)
}

// RegisterHTTPEndpoint mounts the staff directories and facilities. mediaBase
// prefixes stored image paths in responses.
func RegisterHTTPEndpoint(r *router.Router, uc uc, mediaBase string) {
	end := &HTTPEndpoint{uc: uc, mediaBase: mediaBase}

	for _, d := range []struct {
		path string
		kind entity.Kind
	}{
		{path: "/api/v1/management", kind: entity.KindManagement},
		{path: "/api/v1/academic-council", kind: entity.KindAcademicCouncil},
	} {
		obj := d.kind.String()
		r.GET(d.path, end.StaffList(d.kind), r.Authorize(obj, "read"))
		r.GET(d.path+"/:id", end.StaffDetail(d.kind), r.Authorize(obj, "read"))
		r.POST(d.path, end.StaffCreate(d.kind), r.Authorize(obj, "create"))
		r.PUT(d.path+"/:id", end.StaffUpdate(d.kind), r.Authorize(obj, "update"))
		r.DELETE(d.path+"/:id", end.StaffDelete(d.kind), r.Authorize(obj, "delete"))
		r.POST(d.path+"/:id/image", end.StaffImage(d.kind), r.Authorize(obj, "update"))
	}
	r.GET("/api/v1/public/management", end.PublicStaff(entity.KindManagement))
	r.GET("/api/v1/public/academic-council", end.PublicStaff(entity.KindAcademicCouncil))

	r.GET("/api/v1/facilities", end.FacilityList, r.Authorize("facilities", "read"))
	r.GET("/api/v1/facilities/:id", end.FacilityDetail, r.Authorize("facilities", "read"))
	r.POST("/api/v1/facilities", end.FacilityCreate, r.Authorize("facilities", "create"))
	r.PUT("/api/v1/facilities/:id", end.FacilityUpdate, r.Authorize("facilities", "update"))
	r.DELETE("/api/v1/facilities/:id", end.FacilityDelete, r.Authorize("facilities", "delete"))
	r.POST("/api/v1/facilities/:id/image", end.FacilityImage, r.Authorize("facilities", "update"))
	r.GET("/api/v1/public/facilities", end.PublicFacilities)
}
