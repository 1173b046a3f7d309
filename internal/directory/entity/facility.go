package entity

import "time"

type Facility struct {
	ID          int64
	Name        string
	Slug        string
	Description *string
	Image       *string
	ImageData   *string
	ImageMime   *string
	Icon        *string
	Category    *string
	Capacity    *int32
	Location    *string
	Features    []string
	IsFeatured  bool
	Order       int32
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type FacilityFilter struct {
	IsActive   *bool
	IsFeatured *bool
	Category   *string
	Size       int32
	Offset     int32
}
