package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"fixuno-backend/models"
)

// BookingNotice is the flattened booking summary pushed to the operations
// channel when a booking is submitted.
type BookingNotice struct {
	BookingID string
	Name      string
	Phone     string
	Address   string
	Services  string
	Total     int
	Date      string
}

// NoticeFromBooking flattens a booking into the outbound summary.
func NoticeFromBooking(b models.Booking) BookingNotice {
	parts := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d) - ₹%d", item.Name, item.Quantity, item.Price))
	}
	return BookingNotice{
		BookingID: b.ID,
		Name:      b.UserName,
		Phone:     b.UserPhone,
		Address:   b.UserAddress,
		Services:  strings.Join(parts, ", "),
		Total:     b.Total,
		Date:      b.Date,
	}
}

func (n BookingNotice) message() string {
	return fmt.Sprintf(
		"New booking %s\nCustomer: %s (%s)\nAddress: %s\nServices: %s\nTotal: ₹%d\nPlaced: %s",
		n.BookingID, n.Name, n.Phone, n.Address, n.Services, n.Total, n.Date,
	)
}

// Notifier delivers a booking notice to the operations team. Delivery is
// best-effort from the submission flow's point of view.
type Notifier interface {
	Send(notice BookingNotice) error
}

// TwilioNotifier sends the notice as a WhatsApp or SMS message to the
// operations number.
type TwilioNotifier struct {
	client *twilio.RestClient
	to     string
}

func NewTwilioNotifier() *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		to: os.Getenv("OPERATIONS_PHONE"),
	}
}

func (t *TwilioNotifier) Send(notice BookingNotice) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(notice.message())

	// WhatsApp when the operations number is in E.164 form, SMS otherwise.
	if strings.HasPrefix(t.to, "+") {
		params.SetTo("whatsapp:" + t.to)
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetTo(t.to)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	if resp.Sid != nil {
		log.Printf("[NOTIFY] booking %s relayed, SID: %s", notice.BookingID, *resp.Sid)
	} else {
		log.Printf("[NOTIFY] booking %s relayed, no SID returned", notice.BookingID)
	}
	return nil
}

// NoopNotifier is used when Twilio credentials are not configured.
type NoopNotifier struct{}

func (NoopNotifier) Send(notice BookingNotice) error {
	log.Printf("[NOTIFY] (noop) booking %s: %s", notice.BookingID, notice.Services)
	return nil
}

// NotifierFromEnv picks the Twilio notifier when credentials are present.
func NotifierFromEnv() Notifier {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || os.Getenv("OPERATIONS_PHONE") == "" {
		return NoopNotifier{}
	}
	return NewTwilioNotifier()
}
