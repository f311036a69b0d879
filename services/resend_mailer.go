package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Email is a rendered, ready-to-send message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// ResendClient handles email sending via the Resend API
type ResendClient struct {
	apiKey string
	from   string
	http   *http.Client
}

// NewResendClient creates a new Resend client. The client is still usable
// without an API key; Send then fails and the dispatcher logs it.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ RESEND_API_KEY not set, outgoing email disabled")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "Aphia <noreply@aphia.shop>" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one email via the Resend API.
func (r *ResendClient) Send(email Email) error {
	if r.apiKey == "" {
		return errors.New("resend client not configured")
	}

	payload := map[string]any{
		"from":    r.from,
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] email %q sent to %s", email.Subject, email.To)
	return nil
}
