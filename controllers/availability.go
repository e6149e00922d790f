package controllers

import (
	"fmt"
	"strconv"

	"MediSlot/constants"
	"MediSlot/models"
	"MediSlot/services"

	"github.com/gin-gonic/gin"
)

type availabilityController struct {
	svc *services.AvailabilityService
}

func Availability(router gin.IRouter, svc *services.AvailabilityService, guard Guard) {
	h := availabilityController{svc: svc}
	availability := router.Group("/availability")
	{
		availability.GET("", guard("availability", "view"), h.List)
		availability.GET("/summary", guard("availability", "view"), h.Summary)
		availability.GET("/doctor/:doctorId", guard("availability", "view"), h.DoctorWeek)
		availability.POST("/:doctorId", guard("availability", "create"), h.ReplaceDay)
		availability.POST("/:doctorId/slots", guard("availability", "create"), h.AddSlot)
		availability.DELETE("/:doctorId/:dayOfWeek", guard("availability", "delete"), h.DeleteDay)
	}
}

/*
* Optional doctorId query narrows to one doctor
* Every record comes back with its evaluated status
 */
func (h availabilityController) List(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	records, err := h.svc.ListAvailability(c, scope, c.Query("doctorId"))
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, records)
}

func (h availabilityController) Summary(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	summary, err := h.svc.Summary(c, scope)
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, summary)
}

func (h availabilityController) DoctorWeek(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	week, err := h.svc.DoctorWeek(c, scope, c.Param("doctorId"))
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, week)
}

/*
* Bind {dayOfWeek, slots}
* Pass to the service which replaces that day's slots
 */
func (h availabilityController) ReplaceDay(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	if !canManage(c, scope) {
		return
	}
	var req models.DayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failed(c, err)
		return
	}
	view, err := h.svc.ReplaceDay(c, scope, c.Param("doctorId"), req)
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, view)
}

/*
* Bind one slot of the add-availability form
* The service appends it to the day and stores the whole day
 */
func (h availabilityController) AddSlot(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	if !canManage(c, scope) {
		return
	}
	var req models.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failed(c, err)
		return
	}
	view, err := h.svc.AddSlot(c, scope, c.Param("doctorId"), req)
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, view)
}

func (h availabilityController) DeleteDay(c *gin.Context) {
	scope, ok := callerScope(c, h.svc)
	if !ok {
		return
	}
	if !canManage(c, scope) {
		return
	}
	day, err := strconv.Atoi(c.Param("dayOfWeek"))
	if err != nil {
		failed(c, fmt.Errorf("%w: %s", constants.ErrInvalidInput, constants.INVALID_DAY_OF_WEEK))
		return
	}
	msg, err := h.svc.DeleteDay(c, scope, c.Param("doctorId"), day)
	if err != nil {
		failed(c, err)
		return
	}
	succeeded(c, msg)
}
