package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ayursutra/config"
	"ayursutra/utils"

	"go.uber.org/zap"
)

// normalizePhone prepends the country code when the number lacks one.
func normalizePhone(phone, countryCode string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return countryCode + phone
}

func (s *DefaultNotificationService) countryCode() string {
	if cc := config.AppConfig.SMSCountryCode; cc != "" {
		return cc
	}
	return "+91"
}

// TwilioSender posts SMS messages using Twilio's REST API.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
}

// NewTwilioSender builds a sender with sane defaults.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ SMSSender = (*TwilioSender)(nil)

// SendSMS dispatches a single SMS. One attempt, no retries; the dispatcher
// treats failure as terminal.
func (s *TwilioSender) SendSMS(ctx context.Context, to, message string) error {
	if s.accountSID == "" || s.authToken == "" {
		return errors.New("sms: twilio credentials missing")
	}
	if to == "" {
		return errors.New("sms: to required")
	}
	if strings.TrimSpace(message) == "" {
		return errors.New("sms: message required")
	}

	payload := url.Values{}
	payload.Set("To", to)
	payload.Set("From", s.from)
	payload.Set("Body", message)

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms: twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		utils.GetLogger().Info("SMS sent", zap.String("to", to))
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("sms: twilio returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
