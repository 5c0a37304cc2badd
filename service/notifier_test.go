package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bluedock/config"
	"bluedock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.StatusNotification
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(_ context.Context, n models.StatusNotification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, n)
	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

func newRecordingMailer(enabled bool) (*EmailService, *[]*gomail.Message) {
	var (
		mu   sync.Mutex
		sent []*gomail.Message
	)
	s := NewEmailService(&config.EmailConfig{Enabled: enabled})
	s.send = func(m *gomail.Message) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, m)
		return nil
	}
	return s, &sent
}

func TestNotifier_ReadyPublishesAndEmails(t *testing.T) {
	pub := &recordingPublisher{}
	mailer, sent := newRecordingMailer(true)
	n := NewNotifier(pub, mailer)

	n.StatusChanged(sampleEvent())
	require.NoError(t, n.Close())

	assert.Len(t, pub.events, 1)
	assert.Len(t, *sent, 1)
	assert.True(t, pub.closed)
}

func TestNotifier_OtherStatusSkipsEmail(t *testing.T) {
	pub := &recordingPublisher{}
	mailer, sent := newRecordingMailer(true)
	n := NewNotifier(pub, mailer)

	ev := sampleEvent()
	ev.Status = models.StatusCompleted
	n.StatusChanged(ev)
	require.NoError(t, n.Close())

	assert.Len(t, pub.events, 1)
	assert.Empty(t, *sent)
}

func TestNotifier_NoEmailAddress(t *testing.T) {
	mailer, sent := newRecordingMailer(true)
	n := NewNotifier(nil, mailer)

	ev := sampleEvent()
	ev.CustomerEmail = nil
	n.StatusChanged(ev)
	require.NoError(t, n.Close())

	assert.Empty(t, *sent)
}

func TestNotifier_PublishErrorStillEmails(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	mailer, sent := newRecordingMailer(true)
	n := NewNotifier(pub, mailer)

	n.StatusChanged(sampleEvent())
	require.NoError(t, n.Close())

	assert.Len(t, *sent, 1)
}

func TestNotifier_NilMailer(t *testing.T) {
	pub := &recordingPublisher{}
	n := NewNotifier(pub, nil)

	n.StatusChanged(sampleEvent())
	require.NoError(t, n.Close())
	assert.Len(t, pub.events, 1)
}
