package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/config"
	"github.com/avasquez/portfolio-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// SendEmail sends an email using the Resend API.
//
// Requires environment variables:
//   - RESEND_API_KEY: Your Resend API key
//   - RESEND_FROM_EMAIL: The sender address (e.g., "Portfolio <[email protected]>")
func SendEmail(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	cfg := config.New()

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "Portfolio <[email protected]>")

	reqPayload := ResendEmailRequest{
		From:    fromEmail,
		To:      recipients,
		Subject: subject,
		Text:    body,
	}

	jsonData, err := json.Marshal(reqPayload)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var resendErr ResendErrorResponse
		if err := json.Unmarshal(respBody, &resendErr); err == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	var resendResp ResendEmailResponse
	if err := json.Unmarshal(respBody, &resendResp); err == nil {
		log.Debug().Str("emailID", resendResp.ID).Msg("Email sent via Resend")
	}

	return nil
}

// NotifyContactMessage emails the site owner about a new contact-form
// submission. Failures are the caller's to log; the public submitter never
// sees them.
func NotifyContactMessage(recipient string, msg models.Message) error {
	subject := "New portfolio contact message"
	if msg.Subject != "" {
		subject = fmt.Sprintf("New portfolio contact message: %s", msg.Subject)
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	return SendEmail(subject, body, []string{recipient})
}
