package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"MediSlot/constants"
	"MediSlot/models"
	"MediSlot/repository"
	"MediSlot/role"
)

// Claims are the values the JWT middleware puts on the request context.
type Claims struct {
	Code         string
	Collection   string
	TenantId     string
	IsSuperAdmin bool
}

// Scope is who is asking and which part of the tenant tree they can see.
type Scope struct {
	All        bool
	TenantId   string
	HospitalId string
	Actor      models.AddedBy
}

func (s Scope) Allows(tenantId, hospitalId string) bool {
	switch {
	case s.All:
		return true
	case s.HospitalId != "":
		return s.HospitalId == hospitalId
	case s.TenantId != "":
		return s.TenantId == tenantId
	}
	return false
}

func (s Scope) Filter() repository.Filter {
	if s.All {
		return repository.Filter{}
	}
	if s.HospitalId != "" {
		return repository.Filter{HospitalId: s.HospitalId}
	}
	return repository.Filter{TenantId: s.TenantId}
}

// Key names the scope in cache keys and metric labels.
func (s Scope) Key() string {
	switch {
	case s.All:
		return constants.AllScopeKey
	case s.HospitalId != "":
		return "H:" + s.HospitalId
	}
	return "T:" + s.TenantId
}

func (s Scope) valid() bool {
	return s.All || s.HospitalId != "" || s.TenantId != ""
}

func summaryKey(s Scope) string {
	return constants.SummaryKey + s.Key()
}

func weekKey(doctorId string) string {
	return constants.DoctorWeekKey + doctorId
}

// affectedKeys are the cached views a change to one doctor can go stale in.
func affectedKeys(doctor models.Doctor) []string {
	keys := []string{
		summaryKey(Scope{All: true}),
		weekKey(doctor.Key()),
	}
	if doctor.HospitalId != "" {
		keys = append(keys, summaryKey(Scope{HospitalId: doctor.HospitalId}))
	}
	if doctor.TenantId != "" {
		keys = append(keys, summaryKey(Scope{TenantId: doctor.TenantId}))
	}
	return keys
}

/*
* Super admin sees every tenant
* Tenant and hospital admins are scoped to their own code
* Other staff are scoped to the hospital on their own record
* The actor name always comes from the caller's record
 */
func (s *AvailabilityService) ResolveScope(ctx context.Context, claims Claims) (Scope, error) {
	r := role.FromClaims(claims.Collection, claims.IsSuperAdmin)
	scope := Scope{Actor: models.AddedBy{UserId: claims.Code, Role: r}}
	switch r {
	case role.MasterAdmin:
		scope.All = true
	case role.TenantAdmin:
		scope.TenantId = claims.Code
	case role.HospitalAdmin:
		scope.HospitalId = claims.Code
	}
	if claims.Code == "" {
		log.Println("Claims without code")
		return Scope{}, fmt.Errorf("%w: %s", constants.ErrForbidden, constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	staff, err := s.staff.FindByCode(ctx, claims.Collection, claims.Code)
	if err != nil {
		log.Println("Error from staff.FindByCode: ", err)
		if r == role.SubAdmin {
			if errors.Is(err, constants.ErrNotFound) {
				return Scope{}, fmt.Errorf("%w: %s", constants.ErrForbidden, constants.STAFF_NOT_FOUND)
			}
			return Scope{}, err
		}
		return scope, nil
	}
	scope.Actor.Name = staff.Name
	if r != role.SubAdmin {
		return scope, nil
	}
	if claims.TenantId != "" && staff.TenantId != "" && staff.TenantId != claims.TenantId {
		log.Println("Staff ", claims.Code, " belongs to another tenant")
		return Scope{}, constants.ErrForbidden
	}
	scope.HospitalId = staff.Hospital()
	if scope.HospitalId == "" {
		return Scope{}, fmt.Errorf("%w: %s", constants.ErrForbidden, constants.STAFF_WITHOUT_HOSPITAL)
	}
	return scope, nil
}
