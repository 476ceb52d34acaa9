package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planner/controller/respond"
	"planner/dto"
	"planner/logging"
	"planner/services"
)

// CaptchaController exposes token assessment when reCAPTCHA is configured.
func CaptchaController(routes *gin.RouterGroup, captcha services.CaptchaVerifier) {
	routes.POST("/captcha", func(c *gin.Context) {
		if captcha == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		VerifyCaptcha(c, captcha)
	})
}

func VerifyCaptcha(c *gin.Context, captcha services.CaptchaVerifier) {
	var req dto.CaptchaRequest
	if !respond.BindJSON(c, &req) {
		return
	}

	result, err := captcha.Verify(c.Request.Context(), req.Token, req.Action, clientIP(c), c.Request.UserAgent())
	if errors.Is(err, services.ErrCaptchaRejected) {
		logging.Event("captcha_rejected", "", map[string]interface{}{"action": req.Action, "reason": err})
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "reCAPTCHA verification failed",
		})
		return
	}
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"score":   result.Score,
		"action":  result.Action,
		"reasons": result.Reasons,
		"message": "Captcha verified successfully",
	})
}

// clientIP returns the first address when a proxy reports a chain.
func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	return ip
}
