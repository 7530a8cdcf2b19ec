package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/errs"
)

var (
	ErrSMSDisabled = errs.Class("sms delivery is not configured", errs.ErrUnavailable)
	ErrSMSRejected = errs.New("sms gateway rejected the message")
)

type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// SMSClient posts to an sms.to compatible gateway.
type SMSClient struct {
	cfg  config.SMSConfig
	http *http.Client
}

func NewSMSClient(cfg config.SMSConfig) *SMSClient {
	return &SMSClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 20 * time.Second},
	}
}

type smsRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

type smsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *SMSClient) Send(ctx context.Context, phone, message string) error {
	if !s.cfg.Enabled() {
		return ErrSMSDisabled
	}

	body, err := json.Marshal(smsRequest{
		To:       NormalizePhone(phone, s.cfg.DefaultCountryCode),
		Message:  message,
		SenderID: s.cfg.SenderID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("failed to read sms gateway response: %w", err)
	}
	var out smsResponse
	if err := json.Unmarshal(raw, &out); err != nil || resp.StatusCode >= 300 || !out.Success {
		return errs.Wrap(ErrSMSRejected, fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}
	return nil
}

// NormalizePhone strips separators and prefixes the country code to local
// numbers. A leading trunk zero is dropped.
func NormalizePhone(phone, countryCode string) string {
	n := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	if n == "" || strings.HasPrefix(n, "+") {
		return n
	}
	if strings.HasPrefix(n, "00") {
		return "+" + n[2:]
	}
	return countryCode + strings.TrimPrefix(n, "0")
}
