package notifygw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Gateways post delivery requests to the external provider webhooks. They
// carry no retry logic; the notify service treats delivery as best effort.

type EmailGateway struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

type SMSGateway struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

type emailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type smsPayload struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

func NewEmailGateway(httpClient *http.Client, endpoint, apiKey string) *EmailGateway {
	return &EmailGateway{httpClient: httpClient, endpoint: strings.TrimSpace(endpoint), apiKey: apiKey}
}

func NewSMSGateway(httpClient *http.Client, endpoint, apiKey string) *SMSGateway {
	return &SMSGateway{httpClient: httpClient, endpoint: strings.TrimSpace(endpoint), apiKey: apiKey}
}

func (g *EmailGateway) SendEmail(ctx context.Context, to, subject, body string) error {
	if g == nil || g.httpClient == nil || g.endpoint == "" {
		return fmt.Errorf("email gateway is not configured")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("email recipient is empty")
	}

	return postJSON(ctx, g.httpClient, g.endpoint, g.apiKey, emailPayload{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

func (g *SMSGateway) SendSMS(ctx context.Context, to, text string) error {
	if g == nil || g.httpClient == nil || g.endpoint == "" {
		return fmt.Errorf("sms gateway is not configured")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("sms recipient is empty")
	}

	return postJSON(ctx, g.httpClient, g.endpoint, g.apiKey, smsPayload{
		To:   to,
		Text: text,
	})
}

func postJSON(ctx context.Context, client *http.Client, endpoint, apiKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification provider returned status %d", resp.StatusCode)
	}

	return nil
}
