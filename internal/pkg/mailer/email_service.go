// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCheckoutConfirmation(toEmail, fullName, invoiceNumber, planName, serviceEmail string, total, pendingAmount float64, pointsUsed, pointsAwarded int) error
	SendSubscriptionValidated(toEmail, fullName, planName string, pointsAwarded int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendCheckoutConfirmation(toEmail, fullName, invoiceNumber, planName, serviceEmail string, total, pendingAmount float64, pointsUsed, pointsAwarded int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Confirmación de compra %s", invoiceNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>¡Gracias por tu compra, %s!</h2>
			<p>Tu suscripción al plan <strong>%s</strong> ya está activa.</p>
			<p>Cuenta del servicio: <strong>%s</strong></p>
			<p>Factura: <strong>%s</strong></p>
			<p>Total: <strong>$%.2f</strong></p>
			<p>Puntos canjeados: <strong>%d</strong></p>
			<p>Puntos ganados: <strong>%d</strong></p>
			<p>Saldo pendiente: <strong>$%.2f</strong></p>
			<p>Puedes consultar el detalle desde tu panel de usuario.</p>
		</div>
	`, fullName, planName, serviceEmail, invoiceNumber, total, pointsUsed, pointsAwarded, pendingAmount)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send checkout confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Checkout confirmation sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendSubscriptionValidated(toEmail, fullName, planName string, pointsAwarded int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Tu suscripción fue validada")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hola %s,</h2>
			<p>Tu suscripción al plan <strong>%s</strong> fue validada y ya está activa.</p>
			<p>Puntos otorgados: <strong>%d</strong></p>
		</div>
	`, fullName, planName, pointsAwarded)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send validation notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Validation notice sent to %s\n", toEmail)
	return nil
}
