package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// BookingDetails is the data rendered into the two intake notifications.
type BookingDetails struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

const (
	CustomerSubject = "Booking Confirmation - Noshe Cambridge"
	ManagerSubject  = "New Booking - Noshe Cambridge"
)

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #F5EBE0; color: #333;">
  <h1 style="color: #8B2635; text-align: center;">Booking Confirmation</h1>
  <p>Dear <strong>{{.Name}}</strong>,</p>
  <p>Thank you for booking a table at Noshe Cambridge. We're excited to welcome you!</p>
  <div style="background-color: #fff; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h2 style="color: #4A5D23; margin-top: 0;">Your Reservation Details:</h2>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Number of guests:</strong> {{.Guests}}</p>
    {{if .SpecialRequests}}<p><strong>Special Requests:</strong> {{.SpecialRequests}}</p>{{end}}
  </div>
  <p>If you need to make any changes to your reservation, please call us at <strong>07964 624055</strong>.</p>
  <p>We look forward to serving you with our delicious Afghan cuisine and Kenza coffee!</p>
  <p>Best regards,<br><strong>Noshe Cambridge Team</strong></p>
</div>
`))

var managerTemplate = template.Must(template.New("manager").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #F5EBE0; color: #333;">
  <h1 style="color: #8B2635; text-align: center;">New Booking Alert</h1>
  <p>A new booking has been made at Noshe Cambridge:</p>
  <div style="background-color: #fff; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h2 style="color: #4A5D23; margin-top: 0;">Booking Details:</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Number of guests:</strong> {{.Guests}}</p>
    {{if .SpecialRequests}}<p><strong>Special Requests:</strong> {{.SpecialRequests}}</p>{{end}}
  </div>
  <p>Please ensure the table is prepared accordingly.</p>
</div>
`))

// CustomerConfirmation builds the confirmation email sent to the customer.
func CustomerConfirmation(from string, details BookingDetails) (Message, error) {
	html, err := render(customerTemplate, details)
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:    from,
		To:      details.Email,
		Subject: CustomerSubject,
		HTML:    html,
	}, nil
}

// ManagerAlert builds the new-booking alert sent to the restaurant.
func ManagerAlert(from, to string, details BookingDetails) (Message, error) {
	html, err := render(managerTemplate, details)
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:    from,
		To:      to,
		Subject: ManagerSubject,
		HTML:    html,
	}, nil
}

func render(t *template.Template, details BookingDetails) (string, error) {
	var sb strings.Builder

	if err := t.Execute(&sb, details); err != nil {
		return "", fmt.Errorf("failed to render mail template '%v': %w", t.Name(), err)
	}

	return sb.String(), nil
}
