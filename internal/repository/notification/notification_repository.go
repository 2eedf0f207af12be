package notification

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type BrevoConfig struct {
	BrevoBaseUrl     string
	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	AdminEmails      []string
}

type BrevoRepository struct {
	brevoConfig BrevoConfig
}

func NewBrevoRepository(cfg BrevoConfig) *BrevoRepository {
	return &BrevoRepository{
		cfg,
	}
}

type sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recipient struct {
	Email string `json:"email"`
}

type payloadSendEmail struct {
	Sender      sender      `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

func (r BrevoRepository) SendEmail(toEmails []string, subject, htmlContent string) (err error) {
	url := r.brevoConfig.BrevoBaseUrl + "/v3/smtp/email"
	method := http.MethodPost

	toBody := []recipient{}
	for _, email := range toEmails {
		toBody = append(toBody, recipient{Email: email})
	}

	payload := payloadSendEmail{
		Sender: sender{
			Name:  r.brevoConfig.BrevoSenderName,
			Email: r.brevoConfig.BrevoSenderEmail,
		},
		To:          toBody,
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequest(method, url, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("api-key", r.brevoConfig.BrevoAPIKey)

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(res.Body)
	fmt.Println("Brevo Response:", string(bodyBytes))

	return fmt.Errorf("mailer service return negative response %v", res.StatusCode)
}

// NotifyAdmin delivers one email to every configured admin address.
func (r BrevoRepository) NotifyAdmin(subject, htmlContent string) error {
	if len(r.brevoConfig.AdminEmails) == 0 {
		return fmt.Errorf("no admin emails configured")
	}

	return r.SendEmail(r.brevoConfig.AdminEmails, subject, htmlContent)
}
