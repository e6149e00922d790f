package role

import (
	util "github.com/KanapuramVaishnavi/Core/util"
)

const (
	MasterAdmin   = "MASTER_ADMIN"
	TenantAdmin   = "TENANT_ADMIN"
	HospitalAdmin = "HOSPITAL_ADMIN"
	SubAdmin      = "SUB_ADMIN"
)

/*
* Super admin is the master console
* Tenant and hospital collections are their own admins
* Every other staff collection is a sub admin of its hospital
 */
func FromClaims(collection string, isSuperAdmin bool) string {
	switch {
	case isSuperAdmin:
		return MasterAdmin
	case collection == util.TenantCollection:
		return TenantAdmin
	case collection == util.HospitalCollection:
		return HospitalAdmin
	}
	return SubAdmin
}

// CanManageAvailability reports whether the role may change doctor schedules.
func CanManageAvailability(r string) bool {
	return r == MasterAdmin || r == HospitalAdmin || r == SubAdmin
}
