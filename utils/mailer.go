package utils

import (
	"bytes"
	"fmt"
	"log"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends booking confirmations. Delivery is best-effort: the
// booking has already committed when this runs.
type SMTPMailer struct {
	cfg config.App
}

func NewSMTPMailer(cfg config.App) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendBookingConfirmation(booking *models.Booking) error {
	if m.cfg.SMTPHost == "" {
		log.Printf("mail disabled, skipping confirmation for booking %s", booking.ReferenceCode)
		return nil
	}

	var body bytes.Buffer
	body.WriteString(fmt.Sprintf("Hi %s,\n\n", booking.User.FullName))
	body.WriteString(fmt.Sprintf("your reservation %s is confirmed.\n", booking.ReferenceCode))
	body.WriteString(fmt.Sprintf("Check-in: %s\n", booking.CheckInTime.Format("2006-01-02 15:04")))
	body.WriteString(fmt.Sprintf("Check-out: %s\n", booking.CheckOutTime.Format("2006-01-02 15:04")))
	body.WriteString(fmt.Sprintf("Total amount: %d\n", booking.TotalAmount))
	body.WriteString(fmt.Sprintf("Paid so far: %d\n", booking.PaidAmount))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", booking.User.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Booking confirmation %s", booking.ReferenceCode))
	msg.SetBody("text/plain", body.String())

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := d.DialAndSend(msg); err != nil {
		log.Printf("could not send confirmation email: %v", err)
		return err
	}
	return nil
}
