package services

import (
	"context"
	"fmt"
	"log"

	"MediSlot/availability"
	"MediSlot/constants"
	"MediSlot/metrics"
	"MediSlot/models"
	"MediSlot/repository"
)

type BranchDoctor struct {
	Doctor     models.Doctor `json:"doctor"`
	BranchName string        `json:"branchName"`
	Available  bool          `json:"available"`
	TotalSlots int           `json:"totalSlots"`
	TotalHours float64       `json:"totalHours"`
}

// BranchOverview backs the branch management page.
type BranchOverview struct {
	Branch  models.Branch             `json:"branch"`
	Counts  availability.DoctorCounts `json:"counts"`
	Doctors []BranchDoctor            `json:"doctors"`
}

func (s *AvailabilityService) ListBranches(ctx context.Context, scope Scope) ([]models.Branch, error) {
	if err := s.checkScope(scope); err != nil {
		return nil, err
	}
	branches, err := s.branches.FindAll(ctx, scope.Filter())
	if err != nil {
		log.Println("Error from branches.FindAll: ", err)
		return nil, err
	}
	return branches, nil
}

func (s *AvailabilityService) getBranch(ctx context.Context, scope Scope, branchId string) (*models.Branch, error) {
	if branchId == "" {
		return nil, invalid(constants.INVALID_BRANCH_ID)
	}
	branch, err := s.branches.FindByID(ctx, branchId)
	if err != nil {
		log.Println("Error from branches.FindByID: ", err)
		return nil, err
	}
	if !scope.Allows(branch.TenantId, branch.HospitalId) {
		log.Println("Branch ", branchId, " is outside the caller scope")
		return nil, constants.ErrForbidden
	}
	return branch, nil
}

/*
* Check access to the branch
* Fetch doctors of the branch, whichever way they reference it
* Fetch the availability of the branch's hospital
* Evaluate every doctor and count them
 */
func (s *AvailabilityService) BranchAvailability(ctx context.Context, scope Scope, branchId string) (BranchOverview, error) {
	branch, err := s.getBranch(ctx, scope, branchId)
	if err != nil {
		return BranchOverview{}, err
	}
	doctors, err := s.doctors.FindAll(ctx, repository.Filter{HospitalId: branch.HospitalId, BranchId: branchId})
	if err != nil {
		log.Println("Error from doctors.FindAll: ", err)
		return BranchOverview{}, err
	}
	records, err := s.availability.FindAll(ctx, repository.Filter{HospitalId: branch.HospitalId})
	if err != nil {
		log.Println("Error from availability.FindAll: ", err)
		return BranchOverview{}, err
	}
	names := map[string]string{branchId: branch.BranchName}
	byDoctor := availability.GroupByDoctor(records)
	overview := BranchOverview{
		Branch:  *branch,
		Counts:  availability.CountDoctors(doctors, records),
		Doctors: make([]BranchDoctor, 0, len(doctors)),
	}
	for _, d := range doctors {
		own := byDoctor[d.Key()]
		overview.Doctors = append(overview.Doctors, BranchDoctor{
			Doctor:     d,
			BranchName: d.BranchId.DisplayName(names),
			Available:  availability.DoctorAvailable(own),
			TotalSlots: availability.TotalSlots(own),
			TotalHours: availability.TotalHours(own),
		})
	}
	return overview, nil
}

/*
* Check access to the branch
* Delete it
* Drop the summaries of its hospital and tenant only
 */
func (s *AvailabilityService) DeleteBranch(ctx context.Context, scope Scope, branchId string) (string, error) {
	branch, err := s.getBranch(ctx, scope, branchId)
	if err != nil {
		return "", err
	}
	err = s.branches.Delete(ctx, branchId)
	metrics.RecordMutation("delete_branch", err)
	if err != nil {
		log.Println("Error from branches.Delete: ", err)
		return "", err
	}
	keys := []string{summaryKey(Scope{All: true}), summaryKey(Scope{HospitalId: branch.HospitalId})}
	if branch.TenantId != "" {
		keys = append(keys, summaryKey(Scope{TenantId: branch.TenantId}))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Println("Error from cache.Delete: ", err)
	}
	return fmt.Sprintf("The branch %s deleted", branchId), nil
}
