package inbound

import (
	"context"

	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/career/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type uc interface {
	JobPostingList(ctx context.Context, in usecase.ListInput) (*usecase.JobPostingListOutput, error)
	JobPostingDetail(ctx context.Context, id int64) (*entity.JobPosting, error)
	JobPostingCreate(ctx context.Context, in usecase.JobPostingCreateInput) (*entity.JobPosting, error)
	JobPostingUpdate(ctx context.Context, in usecase.JobPostingUpdateInput) (*entity.JobPosting, error)
	JobPostingDelete(ctx context.Context, id int64) error

	CareerList(ctx context.Context, in usecase.ListInput) (*usecase.CareerListOutput, error)
	CareerDetail(ctx context.Context, id int64) (*entity.Career, error)
	CareerCreate(ctx context.Context, in usecase.CareerCreateInput) (*entity.Career, error)
	CareerUpdate(ctx context.Context, in usecase.CareerUpdateInput) (*entity.Career, error)
	CareerDelete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/job-postings", end.JobPostingList, r.Authorize("job_postings", "read"))
	r.GET("/api/v1/job-postings/:id", end.JobPostingDetail, r.Authorize("job_postings", "read"))
	r.POST("/api/v1/job-postings", end.JobPostingCreate, r.Authorize("job_postings", "create"))
	r.PUT("/api/v1/job-postings/:id", end.JobPostingUpdate, r.Authorize("job_postings", "update"))
	r.DELETE("/api/v1/job-postings/:id", end.JobPostingDelete, r.Authorize("job_postings", "delete"))

	r.GET("/api/v1/careers", end.CareerList, r.Authorize("careers", "read"))
	r.GET("/api/v1/careers/:id", end.CareerDetail, r.Authorize("careers", "read"))
	r.POST("/api/v1/careers", end.CareerCreate, r.Authorize("careers", "create"))
	r.PUT("/api/v1/careers/:id", end.CareerUpdate, r.Authorize("careers", "update"))
	r.DELETE("/api/v1/careers/:id", end.CareerDelete, r.Authorize("careers", "delete"))
}
