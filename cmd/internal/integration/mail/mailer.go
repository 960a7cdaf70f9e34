// Package mail is the SMTP side of the messaging collaborator. Sending is
// always dispatched from a goroutine by the caller; failures here are
// logged there and never fail a booking.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"eclat/cmd/internal/domain/entity"
)

// SMTPMailer sends plain-text mail via unauthenticated SMTP
// (Mailpit-compatible).
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(host), strings.TrimSpace(port)),
		from: strings.TrimSpace(from),
	}
}

func (m *SMTPMailer) SendAppointmentConfirmation(appt *entity.Appointment, client *entity.User, svc *entity.Service, beautician *entity.Beautician) error {
	subject := "Your appointment is booked"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment has been received and is awaiting confirmation.\n\n"+
			"Service:    %s\nBeautician: %s\nDate:       %s at %s\nDuration:   %d minutes\nPrice:      %.2f\n\n"+
			"You can cancel free of charge up to 2 hours before the appointment.\n",
		client.Name, svc.Name, beautician.Name, appt.Date, appt.TimeSlot, appt.Duration, appt.Price,
	)
	msg := buildMessage(m.from, client.Email, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{client.Email}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
