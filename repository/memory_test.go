package repository

import (
	"context"
	"testing"

	"MediSlot/constants"
	"MediSlot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAvailability_ReplaceDayIsLastWriterWins(t *testing.T) {
	ctx := context.Background()
	repo := MemoryAvailability{NewMemory()}

	first, err := repo.ReplaceDay(ctx, models.Availability{
		DoctorId: "d1", DayOfWeek: 1, IsActive: true, IsAvailable: true,
		Slots: []models.Slot{{StartTime: "09:00", EndTime: "10:00", TokenCount: 5}},
	})
	require.NoError(t, err)

	second, err := repo.ReplaceDay(ctx, models.Availability{
		DoctorId: "d1", DayOfWeek: 1, IsActive: true, IsAvailable: true,
		Slots: []models.Slot{{StartTime: "11:00", EndTime: "12:00", TokenCount: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	all, err := repo.FindAll(ctx, Filter{DoctorId: "d1"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Slots, 1)
	assert.Equal(t, "11:00", all[0].Slots[0].StartTime)
}

func TestMemoryAvailability_DeleteDay(t *testing.T) {
	ctx := context.Background()
	repo := MemoryAvailability{NewMemory()}
	_, err := repo.ReplaceDay(ctx, models.Availability{DoctorId: "d1", DayOfWeek: 2})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDay(ctx, "d1", 2))
	assert.ErrorIs(t, repo.DeleteDay(ctx, "d1", 2), constants.ErrNotFound)

	_, err = repo.FindDay(ctx, "d1", 2)
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestMemoryDoctors_FilterByScopeAndBranch(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	mem.AddDoctor(models.Doctor{Name: "A", HospitalId: "h1", BranchId: models.UnpopulatedBranch("b1")})
	mem.AddDoctor(models.Doctor{Name: "B", HospitalId: "h1", BranchId: models.PopulatedBranch("b1", "North")})
	mem.AddDoctor(models.Doctor{Name: "C", HospitalId: "h1", BranchId: models.UnpopulatedBranch("b2")})
	mem.AddDoctor(models.Doctor{Name: "D", HospitalId: "h2", BranchId: models.UnpopulatedBranch("b1")})
	repo := MemoryDoctors{mem}

	h1, err := repo.FindAll(ctx, Filter{HospitalId: "h1"})
	require.NoError(t, err)
	assert.Len(t, h1, 3)

	b1, err := repo.FindAll(ctx, Filter{HospitalId: "h1", BranchId: "b1"})
	require.NoError(t, err)
	assert.Len(t, b1, 2)

	all, err := repo.FindAll(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryBranches(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	b := mem.AddBranch(models.Branch{BranchName: "North", HospitalId: "h1"})
	repo := MemoryBranches{mem}

	found, err := repo.FindByID(ctx, b.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "North", found.BranchName)

	require.NoError(t, repo.Delete(ctx, b.ID.Hex()))
	_, err = repo.FindByID(ctx, b.ID.Hex())
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestMemoryStaff_FindByCode(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	mem.AddStaff("RECEPTIONIST", models.Staff{Code: "R0001", Name: "Asha", CreatedBy: "h1"})
	repo := MemoryStaff{mem}

	s, err := repo.FindByCode(ctx, "RECEPTIONIST", "R0001")
	require.NoError(t, err)
	assert.Equal(t, "h1", s.Hospital())
	assert.Equal(t, "Asha", s.Name)

	_, err = repo.FindByCode(ctx, "NURSE", "R0001")
	assert.ErrorIs(t, err, constants.ErrNotFound)
}
