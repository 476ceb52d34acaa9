package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/logging"
	"planner/middleware"
	"planner/services"
)

func SignInController(routes *gin.RouterGroup, users *services.UserService, sessions *services.SessionManager) {
	routes.POST("/signin", func(c *gin.Context) {
		Signin(c, users, sessions)
	})
	routes.POST("/signout", func(c *gin.Context) {
		middleware.ClearSessionCookie(c)
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Signed out"})
	})
}

func MeController(routes *gin.RouterGroup, auth *middleware.SessionAuth) {
	routes.GET("/me", auth.Required(), func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewUserResponse(middleware.CurrentUser(c)))
	})
}

// Signin checks credentials and issues a session token. Unknown email and
// wrong password get the same response.
func Signin(c *gin.Context, users *services.UserService, sessions *services.SessionManager) {
	var request dto.SigninRequest
	if !respond.BindJSON(c, &request) {
		return
	}

	user, err := users.Authenticate(c.Request.Context(), request.Email, request.Password)
	if errors.Is(err, services.ErrUnauthorized) {
		logging.Event("signin_failed", "", map[string]interface{}{"email": services.NormalizeEmail(request.Email)})
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		respond.Error(c, err)
		return
	}

	token, expiresAt, err := sessions.Issue(user)
	if err != nil {
		respond.Error(c, err)
		return
	}
	middleware.SetSessionCookie(c, token, sessions.MaxAge())

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:     token,
		ExpiresAt: dto.FormatTime(expiresAt),
		User:      dto.NewUserResponse(user),
	})
}
