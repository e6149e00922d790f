package controllers

import (
	"MediSlot/services"

	"github.com/gin-gonic/gin"
)

type doctorController struct {
	svc *services.AvailabilityService
}

func Doctor(router gin.IRouter, svc *services.AvailabilityService, guard Guard) {
	h := doctorController{svc: svc}
	doctor := router.Group("/doctors")
	doctor.GET("", guard("doctor", "view"), h.List)
	doctor.GET("/:id", guard("doctor", "view"), h.Fetch)
}

/*
* Extract the caller scope from the context
* Optional branchId query narrows to one branch
 */
func (h doctorController) List(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	doctors, err := h.svc.ListDoctors(c, scope, c.Query("branchId"))
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, doctors)
}

func (h doctorController) Fetch(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	doctor, err := h.svc.GetDoctor(c, scope, c.Param("id"))
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, doctor)
}
