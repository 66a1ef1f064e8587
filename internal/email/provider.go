package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Message is the provider-neutral send request. Swapping providers must
// not change caller behavior, so nothing provider-specific leaks out.
type Message struct {
	To      string
	From    string
	Subject string
	HTML    string
	Text    string
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// NewProvider selects a transport by name. Keys are passed in by the
// caller rather than read from the environment here.
func NewProvider(name, apiKey string) (Provider, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	switch strings.ToLower(name) {
	case "sendgrid":
		return &SendGridProvider{apiKey: apiKey, client: client, url: "https://api.sendgrid.com/v3/mail/send"}, nil
	case "postmark":
		return &PostmarkProvider{apiKey: apiKey, client: client, url: "https://api.postmarkapp.com/email"}, nil
	case "resend":
		return &ResendProvider{apiKey: apiKey, client: client, url: "https://api.resend.com/emails"}, nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", name)
	}
}

type SendGridProvider struct {
	apiKey string
	client *http.Client
	url    string
}

func (p *SendGridProvider) Send(ctx context.Context, msg Message) error {
	content := []map[string]string{
		{"type": "text/html", "value": msg.HTML},
	}
	if msg.Text != "" {
		content = append(content, map[string]string{"type": "text/plain", "value": msg.Text})
	}

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": msg.To}}},
		},
		"from":    map[string]string{"email": msg.From},
		"subject": msg.Subject,
		"content": content,
	}

	return postJSON(ctx, p.client, p.url, payload, map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	})
}

type PostmarkProvider struct {
	apiKey string
	client *http.Client
	url    string
}

func (p *PostmarkProvider) Send(ctx context.Context, msg Message) error {
	payload := map[string]string{
		"From":     msg.From,
		"To":       msg.To,
		"Subject":  msg.Subject,
		"HtmlBody": msg.HTML,
		"TextBody": msg.Text,
	}

	return postJSON(ctx, p.client, p.url, payload, map[string]string{
		"X-Postmark-Server-Token": p.apiKey,
	})
}

type ResendProvider struct {
	apiKey string
	client *http.Client
	url    string
}

func (p *ResendProvider) Send(ctx context.Context, msg Message) error {
	payload := map[string]interface{}{
		"from":    msg.From,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTML,
		"text":    msg.Text,
	}

	return postJSON(ctx, p.client, p.url, payload, map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	})
}

func postJSON(ctx context.Context, client *http.Client, url string, payload interface{}, headers map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
