package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/logging"
	"planner/services"
)

const registerAction = "register"

func SignUpController(routes *gin.RouterGroup, users *services.UserService, captcha services.CaptchaVerifier) {
	routes.POST("/register", func(c *gin.Context) {
		Signup(c, users, captcha)
	})
}

func Signup(c *gin.Context, users *services.UserService, captcha services.CaptchaVerifier) {
	var request dto.SignupRequest
	if !respond.BindJSON(c, &request) {
		return
	}

	if captcha != nil {
		if request.CaptchaToken == "" {
			respond.Error(c, &services.ValidationError{Issues: []dto.Issue{{Field: "captchaToken", Message: "is required"}}})
			return
		}
		_, err := captcha.Verify(c.Request.Context(), request.CaptchaToken, registerAction, clientIP(c), c.Request.UserAgent())
		if errors.Is(err, services.ErrCaptchaRejected) {
			logging.Event("captcha_rejected", "", map[string]interface{}{"action": registerAction, "reason": err})
			respond.Error(c, &services.ValidationError{Issues: []dto.Issue{{Field: "captchaToken", Message: "was rejected"}}})
			return
		}
		if err != nil {
			respond.Error(c, err)
			return
		}
	}

	user, err := users.Register(c.Request.Context(), request)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		return
	}
	if err != nil {
		respond.Error(c, err)
		return
	}

	logging.Event("user_registered", user.UserID, nil)
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}
