package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"MediSlot/availability"
	"MediSlot/cache"
	"MediSlot/constants"
	"MediSlot/metrics"
	"MediSlot/models"
	"MediSlot/repository"
	"MediSlot/validation"
)

type AvailabilityService struct {
	availability repository.AvailabilityRepository
	doctors      repository.DoctorRepository
	branches     repository.BranchRepository
	staff        repository.StaffRepository
	cache        cache.Cache
}

func NewAvailabilityService(
	availabilityRepo repository.AvailabilityRepository,
	doctorRepo repository.DoctorRepository,
	branchRepo repository.BranchRepository,
	staffRepo repository.StaffRepository,
	c cache.Cache,
) *AvailabilityService {
	return &AvailabilityService{
		availability: availabilityRepo,
		doctors:      doctorRepo,
		branches:     branchRepo,
		staff:        staffRepo,
		cache:        c,
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", constants.ErrInvalidInput, msg)
}

func (s *AvailabilityService) checkScope(scope Scope) error {
	if !scope.valid() {
		log.Println("Scope without tenant or hospital")
		return constants.ErrForbidden
	}
	return nil
}

/*
* Validate the scope
* Fetch doctors for the scope, narrowed to a branch if given
 */
func (s *AvailabilityService) ListDoctors(ctx context.Context, scope Scope, branchId string) ([]models.Doctor, error) {
	if err := s.checkScope(scope); err != nil {
		return nil, err
	}
	filter := scope.Filter()
	filter.BranchId = branchId
	doctors, err := s.doctors.FindAll(ctx, filter)
	if err != nil {
		log.Println("Error from doctors.FindAll: ", err)
		return nil, err
	}
	return doctors, nil
}

/*
* Fetch the doctor by id
* Check the doctor belongs to the caller's hospital or tenant
 */
func (s *AvailabilityService) GetDoctor(ctx context.Context, scope Scope, doctorId string) (*models.Doctor, error) {
	if doctorId == "" {
		return nil, invalid(constants.INVALID_DOCTOR_ID)
	}
	doctor, err := s.doctors.FindByID(ctx, doctorId)
	if err != nil {
		log.Println("Error from doctors.FindByID: ", err)
		return nil, err
	}
	if !scope.Allows(doctor.TenantId, doctor.HospitalId) {
		log.Println("Doctor ", doctorId, " is outside the caller scope")
		return nil, fmt.Errorf("%w: %s", constants.ErrForbidden, constants.DOCTOR_BELONGS_TO_ANOTHER_HOSPITAL)
	}
	return doctor, nil
}

/*
* Fetch the records for the scope, optionally one doctor
* Evaluate each record's status
 */
func (s *AvailabilityService) ListAvailability(ctx context.Context, scope Scope, doctorId string) ([]availability.RecordView, error) {
	if err := s.checkScope(scope); err != nil {
		return nil, err
	}
	filter := scope.Filter()
	if doctorId != "" {
		if _, err := s.GetDoctor(ctx, scope, doctorId); err != nil {
			return nil, err
		}
		filter.DoctorId = doctorId
	}
	records, err := s.availability.FindAll(ctx, filter)
	if err != nil {
		log.Println("Error from availability.FindAll: ", err)
		return nil, err
	}
	return availability.Views(records), nil
}

/*
* Check access to the doctor
* Return the cached week if present
* Otherwise evaluate the doctor's records and cache the result
 */
func (s *AvailabilityService) DoctorWeek(ctx context.Context, scope Scope, doctorId string) (availability.DoctorWeek, error) {
	var week availability.DoctorWeek
	if _, err := s.GetDoctor(ctx, scope, doctorId); err != nil {
		return week, err
	}
	key := weekKey(doctorId)
	found, err := s.cache.Get(ctx, key, &week)
	if err != nil {
		log.Println("Error from cache.Get: ", err)
	}
	if found && err == nil {
		return week, nil
	}
	records, err := s.availability.FindAll(ctx, repository.Filter{DoctorId: doctorId})
	if err != nil {
		log.Println("Error from availability.FindAll: ", err)
		return week, err
	}
	week = availability.Week(doctorId, records)
	if err := s.cache.Set(ctx, key, week); err != nil {
		log.Println("Error from cache.Set: ", err)
	}
	return week, nil
}

/*
* Validate the day and every slot
* Check access to the doctor
* Keep the stored day's flags unless the request sets them
* Replace the stored slot list for that day
* Drop only the cached views this doctor shows up in
 */
func (s *AvailabilityService) ReplaceDay(ctx context.Context, scope Scope, doctorId string, req models.DayRequest) (availability.RecordView, error) {
	if err := validation.Validator().Struct(req); err != nil {
		log.Println("Error from validator: ", err)
		if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return availability.RecordView{}, invalid(constants.INVALID_DAY_OF_WEEK)
		}
		return availability.RecordView{}, invalid(err.Error())
	}
	doctor, err := s.GetDoctor(ctx, scope, doctorId)
	if err != nil {
		return availability.RecordView{}, err
	}
	record := models.Availability{
		DoctorId:    doctorId,
		HospitalId:  doctor.HospitalId,
		TenantId:    doctor.TenantId,
		DayOfWeek:   *req.DayOfWeek,
		IsAvailable: true,
		IsActive:    true,
		Slots:       normalizeSlots(req.Slots),
		AddedBy:     scope.Actor,
	}
	existing, err := s.availability.FindDay(ctx, doctorId, record.DayOfWeek)
	switch {
	case err == nil:
		record.IsAvailable = existing.IsAvailable
		record.IsActive = existing.IsActive
	case !errors.Is(err, constants.ErrNotFound):
		log.Println("Error from availability.FindDay: ", err)
		return availability.RecordView{}, err
	}
	if req.IsAvailable != nil {
		record.IsAvailable = *req.IsAvailable
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	saved, err := s.availability.ReplaceDay(ctx, record)
	metrics.RecordMutation("replace_day", err)
	if err != nil {
		log.Println("Error from availability.ReplaceDay: ", err)
		return availability.RecordView{}, err
	}
	s.invalidate(ctx, *doctor)
	return availability.View(*saved), nil
}

/*
* Build and validate the form draft
* Check access to the doctor
* Load the day's current slots, a missing day starts empty
* Append the drafted slot and replace the whole day
 */
func (s *AvailabilityService) AddSlot(ctx context.Context, scope Scope, doctorId string, req models.SlotRequest) (availability.RecordView, error) {
	draft := availability.DraftFromRequest(req)
	if err := draft.Validate(); err != nil {
		log.Println("Error from draft.Validate: ", err)
		return availability.RecordView{}, err
	}
	doctor, err := s.GetDoctor(ctx, scope, doctorId)
	if err != nil {
		return availability.RecordView{}, err
	}
	record := models.Availability{
		DoctorId:    doctorId,
		HospitalId:  doctor.HospitalId,
		TenantId:    doctor.TenantId,
		DayOfWeek:   draft.DayOfWeek,
		IsAvailable: true,
		IsActive:    true,
	}
	existing, err := s.availability.FindDay(ctx, doctorId, draft.DayOfWeek)
	switch {
	case err == nil:
		record.IsAvailable = existing.IsAvailable
		record.IsActive = existing.IsActive
		record.Slots = draft.AppendTo(existing.Slots)
	case errors.Is(err, constants.ErrNotFound):
		record.Slots = draft.AppendTo(nil)
	default:
		log.Println("Error from availability.FindDay: ", err)
		return availability.RecordView{}, err
	}
	record.AddedBy = scope.Actor
	saved, err := s.availability.ReplaceDay(ctx, record)
	metrics.RecordMutation("add_slot", err)
	if err != nil {
		log.Println("Error from availability.ReplaceDay: ", err)
		return availability.RecordView{}, err
	}
	s.invalidate(ctx, *doctor)
	return availability.View(*saved), nil
}

/*
* Check the day and access to the doctor
* Remove the whole day's record
 */
func (s *AvailabilityService) DeleteDay(ctx context.Context, scope Scope, doctorId string, dayOfWeek int) (string, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "", invalid(constants.INVALID_DAY_OF_WEEK)
	}
	doctor, err := s.GetDoctor(ctx, scope, doctorId)
	if err != nil {
		return "", err
	}
	err = s.availability.DeleteDay(ctx, doctorId, dayOfWeek)
	metrics.RecordMutation("delete_day", err)
	if err != nil {
		log.Println("Error from availability.DeleteDay: ", err)
		return "", err
	}
	s.invalidate(ctx, *doctor)
	return fmt.Sprintf("availability of doctor %s for day %d deleted", doctorId, dayOfWeek), nil
}

/*
* Return the cached summary of the scope if present
* Otherwise evaluate doctors and records of the scope
* Cache it and publish it as metrics
 */
func (s *AvailabilityService) Summary(ctx context.Context, scope Scope) (availability.Summary, error) {
	var summary availability.Summary
	if err := s.checkScope(scope); err != nil {
		return summary, err
	}
	key := summaryKey(scope)
	found, err := s.cache.Get(ctx, key, &summary)
	if err != nil {
		log.Println("Error from cache.Get: ", err)
	}
	if found && err == nil {
		metrics.SummaryLookups.WithLabelValues("hit").Inc()
		return summary, nil
	}
	metrics.SummaryLookups.WithLabelValues("miss").Inc()
	return s.refreshSummary(ctx, scope)
}

func (s *AvailabilityService) refreshSummary(ctx context.Context, scope Scope) (availability.Summary, error) {
	filter := scope.Filter()
	doctors, err := s.doctors.FindAll(ctx, filter)
	if err != nil {
		log.Println("Error from doctors.FindAll: ", err)
		return availability.Summary{}, err
	}
	records, err := s.availability.FindAll(ctx, filter)
	if err != nil {
		log.Println("Error from availability.FindAll: ", err)
		return availability.Summary{}, err
	}
	summary := availability.Summarize(doctors, records)
	if err := s.cache.Set(ctx, summaryKey(scope), summary); err != nil {
		log.Println("Error from cache.Set: ", err)
	}
	publish(scope, summary)
	return summary, nil
}

func publish(scope Scope, summary availability.Summary) {
	label := scope.Key()
	for status, n := range summary.StatusCounts {
		metrics.RecordsByStatus.WithLabelValues(label, string(status)).Set(float64(n))
	}
	metrics.Doctors.WithLabelValues(label, "available").Set(float64(summary.Doctors.Available))
	metrics.Doctors.WithLabelValues(label, "unavailable").Set(float64(summary.Doctors.Unavailable))
	metrics.TotalSlots.WithLabelValues(label).Set(float64(summary.TotalSlots))
}

/*
* Recompute the global summary, one per tenant and one per hospital
* Used by the nightly snapshot job
 */
func (s *AvailabilityService) RefreshSummaries(ctx context.Context) (int, error) {
	doctors, err := s.doctors.FindAll(ctx, repository.Filter{})
	if err != nil {
		log.Println("Error from doctors.FindAll: ", err)
		return 0, err
	}
	scopes := []Scope{{All: true}}
	seen := map[string]bool{}
	for _, d := range doctors {
		for _, scope := range []Scope{{TenantId: d.TenantId}, {HospitalId: d.HospitalId}} {
			if !scope.valid() || seen[scope.Key()] {
				continue
			}
			seen[scope.Key()] = true
			scopes = append(scopes, scope)
		}
	}
	for _, scope := range scopes {
		if _, err := s.refreshSummary(ctx, scope); err != nil {
			log.Println("Error refreshing summary for ", scope.Key(), ": ", err)
			return 0, err
		}
	}
	return len(scopes), nil
}

func (s *AvailabilityService) invalidate(ctx context.Context, doctor models.Doctor) {
	if err := s.cache.Delete(ctx, affectedKeys(doctor)...); err != nil {
		log.Println("Error from cache.Delete: ", err)
	}
}

func normalizeSlots(slots []models.Slot) []models.Slot {
	out := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.BookedTokens == nil {
			slot.BookedTokens = []int{}
		}
		out = append(out, slot)
	}
	return out
}
