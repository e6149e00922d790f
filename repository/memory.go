package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"MediSlot/constants"
	"MediSlot/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory keeps doctors, branches and availability in process. It backs the
// service when Mongo is disabled and is the store the tests run against.
type Memory struct {
	mu           sync.RWMutex
	doctors      []models.Doctor
	branches     []models.Branch
	availability []models.Availability
	staff        map[string]models.Staff
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddDoctor(d models.Doctor) models.Doctor {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	m.doctors = append(m.doctors, d)
	return d
}

func (m *Memory) AddBranch(b models.Branch) models.Branch {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.branches = append(m.branches, b)
	return b
}

// AddStaff stores the record a caller of the given collection logs in with.
func (m *Memory) AddStaff(collection string, s models.Staff) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.staff == nil {
		m.staff = map[string]models.Staff{}
	}
	m.staff[collection+"/"+s.Code] = s
}

func inScope(f Filter, tenantId, hospitalId string) bool {
	if f.TenantId != "" && f.TenantId != tenantId {
		return false
	}
	if f.HospitalId != "" && f.HospitalId != hospitalId {
		return false
	}
	return true
}

func notFound(msg string) error {
	return fmt.Errorf("%w: %s", constants.ErrNotFound, msg)
}

type MemoryAvailability struct{ *Memory }

type MemoryDoctors struct{ *Memory }

type MemoryBranches struct{ *Memory }

type MemoryStaff struct{ *Memory }

func (m MemoryAvailability) FindAll(_ context.Context, f Filter) ([]models.Availability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Availability{}
	for _, a := range m.availability {
		if !inScope(f, a.TenantId, a.HospitalId) {
			continue
		}
		if f.DoctorId != "" && a.DoctorId != f.DoctorId {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m MemoryAvailability) FindDay(_ context.Context, doctorId string, dayOfWeek int) (*models.Availability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.availability {
		if a.DoctorId == doctorId && a.DayOfWeek == dayOfWeek {
			found := a
			return &found, nil
		}
	}
	return nil, notFound(constants.AVAILABILITY_NOT_FOUND)
}

func (m MemoryAvailability) ReplaceDay(_ context.Context, record models.Availability) (*models.Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	record.UpdatedAt = now
	for i, a := range m.availability {
		if a.DoctorId == record.DoctorId && a.DayOfWeek == record.DayOfWeek {
			record.ID = a.ID
			record.CreatedAt = a.CreatedAt
			m.availability[i] = record
			return &record, nil
		}
	}
	record.ID = primitive.NewObjectID()
	record.CreatedAt = now
	m.availability = append(m.availability, record)
	return &record, nil
}

func (m MemoryAvailability) DeleteDay(_ context.Context, doctorId string, dayOfWeek int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.availability {
		if a.DoctorId == doctorId && a.DayOfWeek == dayOfWeek {
			m.availability = append(m.availability[:i], m.availability[i+1:]...)
			return nil
		}
	}
	return notFound(constants.AVAILABILITY_NOT_FOUND)
}

func (m MemoryDoctors) FindAll(_ context.Context, f Filter) ([]models.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Doctor{}
	for _, d := range m.doctors {
		if !inScope(f, d.TenantId, d.HospitalId) {
			continue
		}
		if f.BranchId != "" && !d.BranchId.Matches(f.BranchId) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m MemoryDoctors) FindByID(_ context.Context, id string) (*models.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.doctors {
		if d.Key() == id {
			found := d
			return &found, nil
		}
	}
	return nil, notFound(constants.DOCTOR_NOT_FOUND)
}

func (m MemoryBranches) FindAll(_ context.Context, f Filter) ([]models.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Branch{}
	for _, b := range m.branches {
		if inScope(f, b.TenantId, b.HospitalId) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m MemoryBranches) FindByID(_ context.Context, id string) (*models.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.branches {
		if b.ID.Hex() == id {
			found := b
			return &found, nil
		}
	}
	return nil, notFound(constants.BRANCH_NOT_FOUND)
}

func (m MemoryBranches) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.branches {
		if b.ID.Hex() == id {
			m.branches = append(m.branches[:i], m.branches[i+1:]...)
			return nil
		}
	}
	return notFound(constants.BRANCH_NOT_FOUND)
}

func (m MemoryStaff) FindByCode(_ context.Context, collection, code string) (*models.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.staff[collection+"/"+code]
	if !ok {
		return nil, notFound(constants.STAFF_NOT_FOUND)
	}
	return &s, nil
}
