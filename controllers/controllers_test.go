package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MediSlot/cache"
	"MediSlot/models"
	"MediSlot/repository"
	"MediSlot/services"

	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// claims mirrors what the Core JWT middleware sets on the context.
type claims struct {
	code         string
	email        string
	roleCode     string
	collection   string
	tenantId     string
	isSuperAdmin bool
}

type testApp struct {
	router *gin.Engine
	svc    *services.AvailabilityService
	north  models.Branch
	drA    models.Doctor
	drC    models.Doctor
}

var (
	superAdmin    = claims{code: "SA0001", email: "root@medislot.io", roleCode: "SUPERADMIN", collection: "SUPERADMIN", isSuperAdmin: true}
	hospitalAdmin = claims{code: "h1", email: "h1@medislot.io", roleCode: "HOSPITAL", collection: util.HospitalCollection, tenantId: "t1"}
	tenantAdmin   = claims{code: "t1", email: "t1@medislot.io", roleCode: "TENANT", collection: util.TenantCollection, tenantId: "t1"}
	otherHospital = claims{code: "h2", email: "h2@medislot.io", roleCode: "HOSPITAL", collection: util.HospitalCollection, tenantId: "t1"}
	receptionist  = claims{code: "R0001", email: "asha@medislot.io", roleCode: "RECEPTIONIST", collection: "RECEPTIONIST", tenantId: "t1"}
	unknownStaff  = claims{code: "R0404", email: "ghost@medislot.io", roleCode: "RECEPTIONIST", collection: "RECEPTIONIST", tenantId: "t1"}
)

func (cl claims) apply(c *gin.Context) {
	c.Set("code", cl.code)
	c.Set("email", cl.email)
	c.Set("roleCode", cl.roleCode)
	c.Set("collection", cl.collection)
	c.Set("tenantId", cl.tenantId)
	c.Set("isSuperAdmin", cl.isSuperAdmin)
}

// claimsGuard stands in for the JWT middleware and privilege check.
func claimsGuard(cl claims) Guard {
	return func(module, action string) gin.HandlerFunc {
		return func(c *gin.Context) {
			cl.apply(c)
			c.Next()
		}
	}
}

func newTestApp(t *testing.T, cl claims) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := repository.NewMemory()
	app := &testApp{router: gin.New()}
	app.north = mem.AddBranch(models.Branch{BranchName: "North", HospitalId: "h1", TenantId: "t1", IsActive: true})
	app.drA = mem.AddDoctor(models.Doctor{Name: "Dr A", HospitalId: "h1", TenantId: "t1", BranchId: models.UnpopulatedBranch(app.north.ID.Hex()), IsActive: true})
	app.drC = mem.AddDoctor(models.Doctor{Name: "Dr C", HospitalId: "h2", TenantId: "t1", IsActive: true})
	mem.AddStaff("RECEPTIONIST", models.Staff{Code: "R0001", Name: "Asha", TenantId: "t1", CreatedBy: "h1"})
	svc := services.NewAvailabilityService(
		repository.MemoryAvailability{Memory: mem},
		repository.MemoryDoctors{Memory: mem},
		repository.MemoryBranches{Memory: mem},
		repository.MemoryStaff{Memory: mem},
		cache.NewMemory(time.Minute),
	)
	app.svc = svc
	guard := claimsGuard(cl)
	Doctor(app.router, svc, guard)
	Availability(app.router, svc, guard)
	Branch(app.router, svc, guard)
	return app
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestDoctors_ListAndFetch(t *testing.T) {
	app := newTestApp(t, hospitalAdmin)

	w := app.do(http.MethodGet, "/doctors", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr A")
	assert.NotContains(t, w.Body.String(), "Dr C")
	assert.NotContains(t, w.Body.String(), "invalid data")

	w = app.do(http.MethodGet, "/doctors?branchId="+app.north.ID.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr A")

	w = app.do(http.MethodGet, "/doctors/"+app.drC.Key(), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(http.MethodGet, "/doctors/000000000000000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailability_ReplaceListDelete(t *testing.T) {
	app := newTestApp(t, hospitalAdmin)
	path := "/availability/" + app.drA.Key()

	w := app.do(http.MethodPost, path, `{"dayOfWeek":1,"slots":[{"startTime":"10:00","endTime":"11:00","hoursAvailable":1,"tokenCount":10,"bookedTokens":[1,2,3,4,5,6,7,8]}]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Almost Full")

	w = app.do(http.MethodGet, "/availability?doctorId="+app.drA.Key(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Almost Full")

	w = app.do(http.MethodGet, "/availability/doctor/"+app.drA.Key(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalSlots":1`)

	w = app.do(http.MethodGet, "/availability/summary", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "statusCounts")

	w = app.do(http.MethodDelete, path+"/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodDelete, path+"/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailability_BadInput(t *testing.T) {
	app := newTestApp(t, hospitalAdmin)
	path := "/availability/" + app.drA.Key()

	w := app.do(http.MethodPost, path, `{"dayOfWeek":9,"slots":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, path, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodDelete, path+"/monday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, path+"/slots", `{"dayOfWeek":0,"startTime":"10:00","endTime":"11:00","hoursAvailable":1,"tokenCount":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailability_AddSlot(t *testing.T) {
	app := newTestApp(t, hospitalAdmin)
	path := "/availability/" + app.drA.Key() + "/slots"

	w := app.do(http.MethodPost, path, `{"dayOfWeek":2,"startTime":"09:00","endTime":"10:00","hoursAvailable":1,"tokenCount":5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Available")
}

func TestAvailability_TenantAdminCannotManage(t *testing.T) {
	app := newTestApp(t, tenantAdmin)

	w := app.do(http.MethodPost, "/availability/"+app.drA.Key(), `{"dayOfWeek":1,"slots":[]}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(http.MethodGet, "/availability", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBranches(t *testing.T) {
	app := newTestApp(t, hospitalAdmin)

	w := app.do(http.MethodGet, "/branches", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "North")

	w = app.do(http.MethodGet, "/branches/"+app.north.ID.Hex()+"/availability", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr A")

	other := newTestApp(t, otherHospital)
	w = other.do(http.MethodDelete, "/branches/"+other.north.ID.Hex(), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(http.MethodDelete, "/branches/"+app.north.ID.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvailability_StaffScopedToOwnHospital(t *testing.T) {
	app := newTestApp(t, receptionist)

	w := app.do(http.MethodPost, "/availability/"+app.drC.Key(), `{"dayOfWeek":1,"slots":[]}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(http.MethodPost, "/availability/"+app.drA.Key(), `{"dayOfWeek":1,"slots":[{"startTime":"10:00","endTime":"11:00","hoursAvailable":1,"tokenCount":4}]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Asha"`)

	w = app.do(http.MethodGet, "/doctors", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr A")
	assert.NotContains(t, w.Body.String(), "Dr C")
}

func TestAvailability_UnknownStaffIsRejected(t *testing.T) {
	app := newTestApp(t, unknownStaff)

	w := app.do(http.MethodGet, "/availability", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCallerScopeAndCanManage(t *testing.T) {
	app := newTestApp(t, hospitalAdmin)
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		claims     claims
		ok         bool
		all        bool
		hospitalId string
		tenantId   string
		manage     bool
	}{
		{name: "super admin", claims: superAdmin, ok: true, all: true, manage: true},
		{name: "tenant admin", claims: tenantAdmin, ok: true, tenantId: "t1", manage: false},
		{name: "hospital admin", claims: hospitalAdmin, ok: true, hospitalId: "h1", manage: true},
		{name: "receptionist", claims: receptionist, ok: true, hospitalId: "h1", manage: true},
		{name: "unknown staff", claims: unknownStaff, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tt.claims.apply(c)

			scope, ok := callerScope(c, app.svc)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Equal(t, http.StatusForbidden, w.Code)
				return
			}
			assert.Equal(t, tt.all, scope.All)
			assert.Equal(t, tt.hospitalId, scope.HospitalId)
			assert.Equal(t, tt.tenantId, scope.TenantId)
			assert.Equal(t, tt.claims.code, scope.Actor.UserId)

			assert.Equal(t, tt.manage, canManage(c, scope))
			if !tt.manage {
				assert.Equal(t, http.StatusForbidden, w.Code)
			}
		})
	}
}

func TestSucceeded_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	succeeded(c, []models.Branch{{BranchName: "North"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"branchName":"North"`)
	assert.Contains(t, w.Body.String(), util.STATUS_SUCCESS)
}
