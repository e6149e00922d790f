package controllers

import (
	"MediSlot/services"

	"github.com/gin-gonic/gin"
)

type branchController struct {
	svc *services.AvailabilityService
}

func Branch(router gin.IRouter, svc *services.AvailabilityService, guard Guard) {
	h := branchController{svc: svc}
	branch := router.Group("/branches")
	branch.GET("", guard("branch", "view"), h.List)
	branch.GET("/:id/availability", guard("branch", "view"), h.Availability)
	branch.DELETE("/:id", guard("branch", "delete"), h.Delete)
}

func (h branchController) List(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	branches, err := h.svc.ListBranches(c, scope)
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, branches)
}

/*
* Doctors of the branch with their availability
* And the available/unavailable counts
 */
func (h branchController) Availability(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	overview, err := h.svc.BranchAvailability(c, scope, c.Param("id"))
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, overview)
}

func (h branchController) Delete(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	if !canManage(c, scope) {
		return
	}
	msg, err := h.svc.DeleteBranch(c, scope, c.Param("id"))
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, msg)
}
