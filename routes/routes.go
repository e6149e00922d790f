package routes

import (
	"MediSlot/controllers"
	"MediSlot/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Routes(r *gin.Engine, svc *services.AvailabilityService) {

	//public
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	//privateroutes
	r.Use(authorization.JWTAuth())
	guard := func(module, action string) gin.HandlerFunc {
		return authorization.Authorize(module, action)
	}
	controllers.Doctor(r, svc, guard)
	controllers.Availability(r, svc, guard)
	controllers.Branch(r, svc, guard)
}
