package common

import (
	"bytes"
	"context"
	"fmt"
	"hbs/src/config"
	"hbs/src/lib"
	"hbs/src/models"
	"html/template"
	"log"
	"time"
)

type Mailer interface {
	Send(ctx context.Context, input *lib.SendMailInput) error
}

type Publisher interface {
	Publish(channel, event string, data map[string]any) error
}

const (
	SubjectBookingDetails      = "Hotel Booking Details"
	SubjectBookingConfirmation = "Hotel Booking Confirmation"
	SubjectCheckInReminder     = "Your stay starts tomorrow"

	EventBookingConfirmed = "booking-confirmed"
)

var emailTemplates = template.Must(template.New("booking").Parse(`
{{define "details"}}<div style="font-family: Arial, sans-serif;">
<h2>Your Booking Details</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for your booking! Here are your details:</p>
<ul>
<li><strong>Booking ID:</strong> {{.BookingID}}</li>
<li><strong>Hotel Name:</strong> {{.HotelName}}</li>
<li><strong>Location:</strong> {{.Address}}</li>
<li><strong>Check-in:</strong> {{.CheckIn}}</li>
<li><strong>Check-out:</strong> {{.CheckOut}}</li>
<li><strong>Guests:</strong> {{.Guests}}</li>
<li><strong>Booking Amount:</strong> {{.Amount}}</li>
<li><strong>Payment:</strong> {{.PaymentMethod}}</li>
</ul>
<p>We look forward to welcoming you!</p>
<p>If you need to make any changes, feel free to contact us.</p>
</div>{{end}}
{{define "confirmation"}}<div style="font-family: Arial, sans-serif;">
<h2>Payment Successful</h2>
<p>Dear {{.Name}},</p>
<p>Your payment has been received and your booking is confirmed.</p>
<ul>
<li><strong>Booking ID:</strong> {{.BookingID}}</li>
<li><strong>Hotel Name:</strong> {{.HotelName}}</li>
<li><strong>Location:</strong> {{.Address}}</li>
<li><strong>Check-in:</strong> {{.CheckIn}}</li>
<li><strong>Check-out:</strong> {{.CheckOut}}</li>
<li><strong>Guests:</strong> {{.Guests}}</li>
<li><strong>Amount Paid:</strong> {{.Amount}}</li>
{{if .PaymentID}}<li><strong>Payment ID:</strong> {{.PaymentID}}</li>{{end}}
</ul>
<p>Show the attached QR code at the front desk.</p>
</div>{{end}}
{{define "reminder"}}<div style="font-family: Arial, sans-serif;">
<p>Dear {{.Name}},</p>
<p>This is a reminder that your stay at {{.HotelName}} ({{.Address}}) begins on {{.CheckIn}}.</p>
<p>Booking ID: {{.BookingID}}</p>
</div>{{end}}`))

type BookingEmailData struct {
	Name          string
	BookingID     string
	HotelName     string
	Address       string
	CheckIn       string
	CheckOut      string
	Guests        int
	Amount        string
	PaymentMethod string
	PaymentID     string
}

func NewBookingEmailData(b *models.Booking) BookingEmailData {
	data := BookingEmailData{
		BookingID:     b.ID,
		CheckIn:       b.CheckInDate.Format(config.DATE_FORMAT),
		CheckOut:      b.CheckOutDate.Format(config.DATE_FORMAT),
		Guests:        b.Guests,
		Amount:        fmt.Sprintf("%s%.2f", config.CurrencySymbol(), b.TotalPrice),
		PaymentMethod: b.PaymentMethod,
	}
	if b.User != nil {
		data.Name = b.User.Username
	}
	if b.Hotel != nil {
		data.HotelName = b.Hotel.Name
		data.Address = b.Hotel.Address
	}
	if b.RazorpayPaymentID != nil {
		data.PaymentID = *b.RazorpayPaymentID
	}
	return data
}

// Notifier sends booking mail and owner push events. Every public method is
// best-effort: failures are logged and never returned to the booking flow.
type Notifier struct {
	mailer    Mailer
	publisher Publisher
	from      string
	fromName  string
}

// NewNotifier accepts a nil publisher when realtime push is not configured.
func NewNotifier(m Mailer, p Publisher) *Notifier {
	return &Notifier{
		mailer:    m,
		publisher: p,
		from:      config.GetEnv("SENDER_EMAIL", "no-reply@quickstay.local"),
		fromName:  config.GetEnv("SENDER_NAME", "QuickStay"),
	}
}

// CanMail reports whether a mailer is configured.
func (n *Notifier) CanMail() bool {
	return n != nil && n.mailer != nil
}

// SendBookingEmail renders the named template and sends it to a single recipient.
func (n *Notifier) SendBookingEmail(ctx context.Context, to, subject, tmpl string, data BookingEmailData, attachments ...lib.MailAttachment) error {
	if !n.CanMail() {
		return nil
	}
	if to == "" {
		return fmt.Errorf("booking %s has no recipient address", data.BookingID)
	}
	var body bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return err
	}
	return n.mailer.Send(ctx, &lib.SendMailInput{
		From:        n.from,
		FromName:    n.fromName,
		To:          []string{to},
		Subject:     subject,
		Body:        body.String(),
		Html:        true,
		Attachments: attachments,
	})
}

func (n *Notifier) BookingCreated(ctx context.Context, b *models.Booking) {
	if err := n.SendBookingEmail(ctx, recipient(b), SubjectBookingDetails, "details", NewBookingEmailData(b)); err != nil {
		log.Printf("[Notifier] Booking %s details email failed: %s\n", b.ID, err.Error())
	}
}

func (n *Notifier) BookingConfirmed(ctx context.Context, b *models.Booking) {
	if n == nil {
		return
	}
	var attachments []lib.MailAttachment
	png, err := lib.QRCodePNG(b.ID)
	if err != nil {
		log.Printf("[Notifier] QR code for booking %s failed: %s\n", b.ID, err.Error())
	} else {
		attachments = append(attachments, lib.MailAttachment{Name: fmt.Sprintf("booking-%s.png", b.ID), Data: png})
	}
	if err := n.SendBookingEmail(ctx, recipient(b), SubjectBookingConfirmation, "confirmation", NewBookingEmailData(b), attachments...); err != nil {
		log.Printf("[Notifier] Booking %s confirmation email failed: %s\n", b.ID, err.Error())
	}
	if n.publisher == nil {
		return
	}
	err = n.publisher.Publish(HotelChannel(b.HotelID), EventBookingConfirmed, map[string]any{
		"bookingId":    b.ID,
		"roomId":       b.RoomID,
		"checkInDate":  b.CheckInDate.Format(config.DATE_FORMAT),
		"checkOutDate": b.CheckOutDate.Format(config.DATE_FORMAT),
		"totalPrice":   b.TotalPrice,
		"confirmedAt":  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("[Notifier] Push for booking %s failed: %s\n", b.ID, err.Error())
	}
}

func (n *Notifier) CheckInReminder(ctx context.Context, b *models.Booking) error {
	return n.SendBookingEmail(ctx, recipient(b), SubjectCheckInReminder, "reminder", NewBookingEmailData(b))
}

func HotelChannel(hotelID string) string {
	return "hotel-" + hotelID
}

func recipient(b *models.Booking) string {
	if b.User == nil {
		return ""
	}
	return b.User.Email
}
