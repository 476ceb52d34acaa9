package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/services"
)

func DashboardController(api *gin.RouterGroup, dashboard *services.DashboardService) {
	api.GET("/dashboard", func(c *gin.Context) {
		summary, err := dashboard.Summary(c.Request.Context(), c.GetString("userId"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}
