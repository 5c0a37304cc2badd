package service

import (
	"context"
	"log"
	"sync"

	"bluedock/models"
)

// Notifier fans a status change out to the event broker and, when the order
// becomes ready, to the customer's email. Delivery runs in the background and
// failures are only logged.
type Notifier struct {
	publisher Publisher
	mailer    *EmailService
	wg        sync.WaitGroup
}

// NewNotifier creates a notifier. mailer may be nil.
func NewNotifier(publisher Publisher, mailer *EmailService) *Notifier {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Notifier{publisher: publisher, mailer: mailer}
}

// StatusChanged schedules delivery of ev and returns immediately
func (n *Notifier) StatusChanged(ev models.StatusNotification) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(ev)
	}()
}

func (n *Notifier) deliver(ev models.StatusNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := n.publisher.Publish(ctx, ev); err != nil {
		log.Printf("publish status event %s: %v", ev.ReceiptNumber, err)
	}

	if ev.Status != models.StatusReady || !n.mailer.Enabled() {
		return
	}
	if ev.CustomerEmail == nil || *ev.CustomerEmail == "" {
		return
	}
	if err := n.mailer.SendOrderReadyEmail(ev); err != nil {
		log.Printf("send ready email %s: %v", ev.ReceiptNumber, err)
	}
}

// Close waits for pending deliveries and closes the publisher
func (n *Notifier) Close() error {
	n.wg.Wait()
	return n.publisher.Close()
}
