package calendar

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/services"
)

func CalendarController(api *gin.RouterGroup, calendar *services.CalendarService) {
	api.GET("/calendar", func(c *gin.Context) {
		events, err := calendar.Events(c.Request.Context(), c.GetString("userId"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	})
}
