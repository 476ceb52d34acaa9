package services

import (
	"context"
	"errors"
	"fmt"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"google.golang.org/api/option"

	"planner/dto"
)

// ErrCaptchaRejected means the token was invalid or for another action.
var ErrCaptchaRejected = errors.New("captcha rejected")

// CaptchaVerifier assesses a reCAPTCHA token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, action, userIP, userAgent string) (*dto.AssessmentResult, error)
}

// RecaptchaVerifier calls reCAPTCHA Enterprise CreateAssessment.
type RecaptchaVerifier struct {
	ProjectID       string
	SiteKey         string
	CredentialsFile string
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token, action, userIP, userAgent string) (*dto.AssessmentResult, error) {
	var opts []option.ClientOption
	if v.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(v.CredentialsFile))
	}
	client, err := recaptcha.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating recaptcha client: %w", err)
	}
	defer client.Close()

	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", v.ProjectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       v.SiteKey,
				UserIpAddress: userIP,
				UserAgent:     userAgent,
			},
		},
	}
	resp, err := client.CreateAssessment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating assessment: %w", err)
	}

	props := resp.GetTokenProperties()
	if props == nil || !props.GetValid() {
		return nil, fmt.Errorf("%w: %s", ErrCaptchaRejected, props.GetInvalidReason())
	}
	if action != "" && props.GetAction() != action {
		return nil, fmt.Errorf("%w: action %q, want %q", ErrCaptchaRejected, props.GetAction(), action)
	}

	result := &dto.AssessmentResult{Action: props.GetAction()}
	if risk := resp.GetRiskAnalysis(); risk != nil {
		result.Score = risk.GetScore()
		for _, reason := range risk.GetReasons() {
			result.Reasons = append(result.Reasons, reason.String())
		}
	}
	return result, nil
}
