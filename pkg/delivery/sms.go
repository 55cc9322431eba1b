// FILE: pkg/delivery/sms.go
// SMS transport over an HTTP provider API
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
)

// SMSTransport posts to the configured provider gateway. Single tier, no
// fallback. Subject is ignored; SMS carries only the body.
type SMSTransport struct {
	apiURL       string
	apiKey       string
	senderNumber string
	client       *http.Client
}

func NewSMSTransport(apiURL, apiKey, senderNumber string) (*SMSTransport, error) {
	if apiURL == "" || apiKey == "" || senderNumber == "" {
		return nil, fmt.Errorf("%w: incomplete SMS provider settings (need api url, api key, sender number)", apperror.ErrConfiguration)
	}
	return &SMSTransport{
		apiURL:       apiURL,
		apiKey:       apiKey,
		senderNumber: senderNumber,
		client:       &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (t *SMSTransport) Send(ctx context.Context, rcpt entity.Recipient, msg Message) error {
	payload, err := json.Marshal(map[string]string{
		"from": t.senderNumber,
		"to":   rcpt.Phone,
		"body": msg.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms submission to %s: %w", rcpt.Phone, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms provider rejected %s: status %d: %s", rcpt.Phone, resp.StatusCode, string(body))
	}
	return nil
}
