package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/logging"
	"planner/middleware"
	"planner/services"
)

func UserController(api *gin.RouterGroup, users *services.UserService, auth *middleware.SessionAuth) {
	routes := api.Group("/user")
	{
		routes.GET("/profile", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.NewUserResponse(middleware.CurrentUser(c)))
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfile(c, users, auth)
		})
	}
}

func UpdateProfile(c *gin.Context, users *services.UserService, auth *middleware.SessionAuth) {
	var req dto.UpdateProfileRequest
	if !respond.BindJSON(c, &req) {
		return
	}
	userID := c.GetString("userId")
	u, err := users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	auth.Forget(userID)
	logging.Event("profile_updated", userID, map[string]interface{}{"passwordChanged": req.Password != nil})
	c.JSON(http.StatusOK, dto.NewUserResponse(u))
}
