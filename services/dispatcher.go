package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errMailerNotConfigured = errors.New("mailer not configured")

// Sender is what the dispatcher needs from a mail client.
type Sender interface {
	Send(email Email) error
}

// Dispatcher sends email as a fire-and-forget side effect. A dispatch failure
// is logged and audited but never propagates to the request that queued it.
type Dispatcher struct {
	client Sender
	pool   *pgxpool.Pool
}

// NewDispatcher wires a mail client and an optional pgx pool for the
// email_events audit trail. Both may be nil in tests.
func NewDispatcher(client Sender, pool *pgxpool.Pool) *Dispatcher {
	return &Dispatcher{client: client, pool: pool}
}

// DispatchAsync queues the email on its own goroutine and returns immediately.
func (d *Dispatcher) DispatchAsync(kind string, email Email) {
	go d.dispatch(kind, email)
}

func (d *Dispatcher) dispatch(kind string, email Email) {
	if d.client == nil {
		log.Printf("[mail] %s to %s skipped: mailer not configured", kind, email.To)
		d.recordEvent(kind, email, errMailerNotConfigured)
		return
	}

	sendErr := d.client.Send(email)
	if sendErr != nil {
		log.Printf("[mail] ❌ %s to %s failed: %v", kind, email.To, sendErr)
	} else {
		log.Printf("[mail] ✅ %s sent to %s", kind, email.To)
	}

	d.recordEvent(kind, email, sendErr)
}

// recordEvent writes a best-effort audit row; failures only log.
func (d *Dispatcher) recordEvent(kind string, email Email, sendErr error) {
	if d.pool == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO email_events (
			id, kind, recipient, subject, sent, error, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	errText := ""
	if sendErr != nil {
		errText = sendErr.Error()
	}

	_, err := d.pool.Exec(ctx, query,
		uuid.New().String(),
		kind,
		email.To,
		email.Subject,
		sendErr == nil,
		errText,
	)
	if err != nil {
		log.Printf("[mail] failed to record email event: %v", err)
	}
}
