// Package smtp delivers rent lifecycle notifications by email. The pickup
// code only ever travels through this channel: it goes to the receiver when
// the parcel enters the locker and is never exposed through the read API.
package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"parcellocker/internal/core/domain/model/rent"
)

// sendFunc matches net/smtp.SendMail, injectable for tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Notifier implements ports.Notifier over plain SMTP.
type Notifier struct {
	addr   string
	from   string
	auth   smtp.Auth
	send   sendFunc
	logger *slog.Logger
}

// NewNotifier creates an SMTP notifier. addr is host:port; auth may be nil
// for unauthenticated relays.
func NewNotifier(addr, from string, auth smtp.Auth, logger *slog.Logger) *Notifier {
	return &Notifier{
		addr:   addr,
		from:   from,
		auth:   auth,
		send:   smtp.SendMail,
		logger: logger.With("component", "smtp_notifier"),
	}
}

// NotifyDropoff emails the receiver the locker location and the one-time
// pickup code. The rent is past dropoff here, so a locker is always bound.
func (n *Notifier) NotifyDropoff(ctx context.Context, aggregate *rent.Rent) error {
	body := fmt.Sprintf(
		"Your parcel is ready for pickup in locker %s.\r\nUse code %s to open it.\r\n",
		aggregate.LockerID().String(),
		aggregate.Code(),
	)

	err := n.sendMail(aggregate.ReceiverEmail(), "Your parcel has arrived", body)
	if err != nil {
		n.logger.ErrorContext(ctx, "Dropoff notification failed",
			"rent_id", aggregate.ID().String(), "error", err)
		return fmt.Errorf("failed to notify receiver: %w", err)
	}

	n.logger.InfoContext(ctx, "Dropoff notification sent",
		"rent_id", aggregate.ID().String())
	return nil
}

// NotifyDelivered emails the sender that the parcel was picked up.
func (n *Notifier) NotifyDelivered(ctx context.Context, aggregate *rent.Rent) error {
	body := "Your parcel was picked up by the receiver.\r\n"

	err := n.sendMail(aggregate.SenderEmail(), "Your parcel was delivered", body)
	if err != nil {
		n.logger.ErrorContext(ctx, "Delivery notification failed",
			"rent_id", aggregate.ID().String(), "error", err)
		return fmt.Errorf("failed to notify sender: %w", err)
	}

	n.logger.InfoContext(ctx, "Delivery notification sent",
		"rent_id", aggregate.ID().String())
	return nil
}

func (n *Notifier) sendMail(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return n.send(n.addr, n.auth, n.from, []string{to}, []byte(msg.String()))
}
