package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Slot struct {
	StartTime      string  `json:"startTime" bson:"startTime" validate:"required,hhmm"`
	EndTime        string  `json:"endTime" bson:"endTime" validate:"required,hhmm"`
	HoursAvailable float64 `json:"hoursAvailable" bson:"hoursAvailable" validate:"gte=0"`
	TokenCount     int     `json:"tokenCount" bson:"tokenCount" validate:"gte=0"`
	BookedTokens   []int   `json:"bookedTokens" bson:"bookedTokens"`
}

type AddedBy struct {
	UserId string `json:"userId" bson:"userId"`
	Role   string `json:"role" bson:"role"`
	Name   string `json:"name" bson:"name"`
}

// Availability is one doctor's schedule for one day of the week
// (0 = Sunday .. 6 = Saturday).
type Availability struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorId    string             `json:"doctorId" bson:"doctorId"`
	HospitalId  string             `json:"hospitalId" bson:"hospitalId"`
	TenantId    string             `json:"tenantId" bson:"tenantId"`
	DayOfWeek   int                `json:"dayOfWeek" bson:"dayOfWeek"`
	IsAvailable bool               `json:"isAvailable" bson:"isAvailable"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	Slots       []Slot             `json:"slots" bson:"slots"`
	AddedBy     AddedBy            `json:"addedBy" bson:"addedBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DayRequest is the body of the replace-day call.
type DayRequest struct {
	DayOfWeek   *int   `json:"dayOfWeek" validate:"required,gte=0,lte=6"`
	Slots       []Slot `json:"slots" validate:"dive"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// SlotRequest is the body of the add-slot form submit.
type SlotRequest struct {
	DayOfWeek      int     `json:"dayOfWeek"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	HoursAvailable float64 `json:"hoursAvailable"`
	TokenCount     int     `json:"tokenCount"`
}
