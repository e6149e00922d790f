package models

// Staff is the part of a caller's own record that scoping needs. Hospital
// staff carry the hospital that created them in createdBy, newer records
// also store hospitalId.
type Staff struct {
	Code       string `json:"code" bson:"code"`
	Name       string `json:"name" bson:"name"`
	TenantId   string `json:"tenantId" bson:"tenantId"`
	HospitalId string `json:"hospitalId" bson:"hospitalId"`
	CreatedBy  string `json:"createdBy" bson:"createdBy"`
}

// Hospital is the hospital code the staff member works for.
func (s Staff) Hospital() string {
	if s.HospitalId != "" {
		return s.HospitalId
	}
	return s.CreatedBy
}
