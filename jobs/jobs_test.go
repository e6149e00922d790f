package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"MediSlot/cache"
	"MediSlot/models"
	"MediSlot/repository"
	"MediSlot/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRefresher struct{}

func (failingRefresher) RefreshSummaries(context.Context) (int, error) {
	return 0, errors.New("mongo down")
}

func newService() *services.AvailabilityService {
	mem := repository.NewMemory()
	mem.AddDoctor(models.Doctor{Name: "A", HospitalId: "h1", TenantId: "t1", IsActive: true})
	mem.AddDoctor(models.Doctor{Name: "B", HospitalId: "h2", TenantId: "t1", IsActive: true})
	mem.AddDoctor(models.Doctor{Name: "C", HospitalId: "h2", TenantId: "t1", IsActive: true})
	return services.NewAvailabilityService(
		repository.MemoryAvailability{Memory: mem},
		repository.MemoryDoctors{Memory: mem},
		repository.MemoryBranches{Memory: mem},
		repository.MemoryStaff{Memory: mem},
		cache.NewMemory(time.Minute),
	)
}

func TestRunSnapshot_RefreshesEveryHospital(t *testing.T) {
	// global summary, tenant t1, hospitals h1 and h2
	assert.Equal(t, 4, RunSnapshot(newService()))
}

func TestRunSnapshot_Error(t *testing.T) {
	assert.Equal(t, 0, RunSnapshot(failingRefresher{}))
}

func TestStartDailyScheduler(t *testing.T) {
	c, err := StartDailyScheduler(newService(), "5 0 * * *")
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)

	_, err = StartDailyScheduler(newService(), "not a cron")
	assert.Error(t, err)
}
