package dto

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name" binding:"required"`
	CaptchaToken string `json:"captchaToken"`
}

type CaptchaRequest struct {
	Token  string `json:"token" binding:"required"`
	Action string `json:"action"`
}

type AssessmentResult struct {
	Score   float32  `json:"score"`
	Action  string   `json:"action"`
	Reasons []string `json:"reasons,omitempty"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
