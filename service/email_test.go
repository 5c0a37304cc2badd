package service

import (
	"bytes"
	"errors"
	"testing"

	"bluedock/config"
	"bluedock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func strPtr(s string) *string { return &s }

func readyNotification() models.StatusNotification {
	return models.StatusNotification{
		CustomerName:    "Ana <Souza>",
		CustomerEmail:   strPtr("ana@example.com"),
		ReceiptNumber:   "2026-123456",
		ItemDescription: "Molinete Shimano",
		Status:          models.StatusReady,
	}
}

func TestGenerateReadyEmailBody(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{})
	body := s.generateReadyEmailBody(readyNotification())

	assert.Contains(t, body, "Ana &lt;Souza&gt;")
	assert.Contains(t, body, "Molinete Shimano")
	assert.Contains(t, body, "2026-123456")
	assert.Contains(t, body, "retirada")
}

func TestSendOrderReadyEmail_Disabled(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})
	err := s.SendOrderReadyEmail(readyNotification())
	assert.ErrorIs(t, err, ErrEmailDisabled)

	var nilService *EmailService
	assert.False(t, nilService.Enabled())
}

func TestSendOrderReadyEmail_NoAddress(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	n := readyNotification()
	n.CustomerEmail = nil
	assert.Error(t, s.SendOrderReadyEmail(n))
}

func TestSendOrderReadyEmail(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true, Username: "loja@example.com", From: "BlueDock"})

	var sent *gomail.Message
	s.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	require.NoError(t, s.SendOrderReadyEmail(readyNotification()))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"ana@example.com"}, sent.GetHeader("To"))
	assert.Contains(t, sent.GetHeader("Subject")[0], "2026-123456")

	var buf bytes.Buffer
	_, err := sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
}

func TestSendOrderReadyEmail_TransportError(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	boom := errors.New("smtp down")
	s.send = func(*gomail.Message) error { return boom }

	err := s.SendOrderReadyEmail(readyNotification())
	assert.ErrorIs(t, err, boom)
}
