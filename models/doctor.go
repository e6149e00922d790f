package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Department     string             `json:"department" bson:"department"`
	BranchId       BranchRef          `json:"branchId" bson:"branchId"`
	HospitalId     string             `json:"hospitalId" bson:"hospitalId"`
	TenantId       string             `json:"tenantId" bson:"tenantId"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Key is the id availability records use to point at the doctor.
func (d Doctor) Key() string {
	return d.ID.Hex()
}
