package constants

import "errors"

const (
	DoctorCollection       = "DOCTOR"
	AvailabilityCollection = "DOCTOR_AVAILABILITY"
	BranchCollection       = "BRANCH"
)

const (
	SummaryKey    = "AVAILABILITY_SUMMARY:"
	DoctorWeekKey = "AVAILABILITY_DOCTOR:"
	AllScopeKey   = "ALL"
)

const (
	RECORD_NOT_FOUND                   = "record not found"
	DOCTOR_NOT_FOUND                   = "doctor not found"
	BRANCH_NOT_FOUND                   = "branch not found"
	AVAILABILITY_NOT_FOUND             = "availability not found for this day"
	INVALID_DOCTOR_ID                  = "invalid doctor id"
	INVALID_BRANCH_ID                  = "invalid branch id"
	INVALID_DAY_OF_WEEK                = "dayOfWeek must be between 0 and 6"
	SUNDAY_IS_HOLIDAY                  = "sunday is a holiday, slots cannot be added"
	START_TIME_MUST_BE_BEFORE_END      = "startTime must be before endTime"
	TOKEN_COUNT_MUST_BE_POSITIVE       = "tokenCount must be at least 1"
	HOURS_MUST_NOT_BE_NEGATIVE         = "hoursAvailable must not be negative"
	INVALID_TIME_FORMAT                = "time must be in HH:MM format"
	INVALID_USER_TO_ACCESS             = "this user does not have access"
	DOCTOR_BELONGS_TO_ANOTHER_HOSPITAL = "doctor belongs to another hospital"
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT  = "unable to fetch code from context"
	STAFF_NOT_FOUND                    = "user record not found"
	STAFF_WITHOUT_HOSPITAL             = "user is not attached to a hospital"
)

var (
	ErrNotFound     = errors.New(RECORD_NOT_FOUND)
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New(INVALID_USER_TO_ACCESS)
)
