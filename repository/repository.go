package repository

import (
	"context"

	"MediSlot/models"
)

// Filter narrows a listing to a tenant, a hospital and optionally a single
// doctor or branch. Empty fields do not filter.
type Filter struct {
	TenantId   string
	HospitalId string
	DoctorId   string
	BranchId   string
}

type AvailabilityRepository interface {
	FindAll(ctx context.Context, filter Filter) ([]models.Availability, error)
	FindDay(ctx context.Context, doctorId string, dayOfWeek int) (*models.Availability, error)
	ReplaceDay(ctx context.Context, record models.Availability) (*models.Availability, error)
	DeleteDay(ctx context.Context, doctorId string, dayOfWeek int) error
}

type DoctorRepository interface {
	FindAll(ctx context.Context, filter Filter) ([]models.Doctor, error)
	FindByID(ctx context.Context, id string) (*models.Doctor, error)
}

type BranchRepository interface {
	FindAll(ctx context.Context, filter Filter) ([]models.Branch, error)
	FindByID(ctx context.Context, id string) (*models.Branch, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository reads the caller's own record from the collection named
// in its token.
type StaffRepository interface {
	FindByCode(ctx context.Context, collection, code string) (*models.Staff, error)
}
