package services

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"fixuno-backend/models"
	"fixuno-backend/store"
	"fixuno-backend/utils"
)

// ConfirmationSeconds is how long the storefront shows the success card
// before returning home. The commit itself is synchronous; the delay is
// purely presentational and is handed to the client in the response.
const ConfirmationSeconds = 3

// ErrEmptyCart rejects a submission with nothing selected.
var ErrEmptyCart = errors.New("cart is empty")

// ErrNotifyFailed is returned in strict mode when the operations
// notification observably fails; nothing has been committed and the client
// may retry without re-entering data.
var ErrNotifyFailed = errors.New("booking notification failed")

// SubmissionInput carries the booking form fields.
type SubmissionInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// FieldErrors maps a form field to its inline validation message.
type FieldErrors map[string]string

// SubmissionService runs the booking flow: validate, build the booking
// record, notify operations, commit to the ledger and clear the cart.
type SubmissionService struct {
	store        *store.Store
	notifier     Notifier
	strictNotify bool

	now   func() time.Time
	newID func() string
}

// NewSubmissionService wires the flow. NOTIFY_STRICT=true makes an
// observable notification failure block the commit; the default treats the
// local ledger as authoritative and the notification as a side channel.
func NewSubmissionService(st *store.Store, notifier Notifier) *SubmissionService {
	return &SubmissionService{
		store:        st,
		notifier:     notifier,
		strictNotify: os.Getenv("NOTIFY_STRICT") == "true",
		now:          time.Now,
		newID:        utils.GenerateBookingID,
	}
}

// Validate checks the form fields without advancing the flow.
func (s *SubmissionService) Validate(input SubmissionInput) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "Please enter your name."
	}
	if strings.TrimSpace(input.Address) == "" {
		errs["address"] = "Please enter your service address."
	}
	if !utils.ValidatePhone(input.Phone) {
		errs["phone"] = "Please enter a valid 10-digit phone number."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit runs one submission attempt. On success the booking has been
// committed (ledger + profile) and the cart cleared. Field errors leave the
// flow idle; ErrNotifyFailed (strict mode only) leaves cart and profile
// untouched for a retry.
func (s *SubmissionService) Submit(cart *models.Cart, input SubmissionInput) (models.Booking, FieldErrors, error) {
	if fieldErrs := s.Validate(input); fieldErrs != nil {
		return models.Booking{}, fieldErrs, nil
	}
	if cart.Len() == 0 {
		return models.Booking{}, nil, ErrEmptyCart
	}

	booking := models.Booking{
		ID:          s.newID(),
		Date:        s.now().Format("2/1/2006, 3:04:05 pm"),
		Items:       cart.Items(),
		Total:       cart.Total(),
		Status:      models.StatusPending,
		UserName:    input.Name,
		UserPhone:   input.Phone,
		UserAddress: input.Address,
	}

	notice := NoticeFromBooking(booking)
	if s.strictNotify {
		if err := s.notifier.Send(notice); err != nil {
			log.Printf("[BOOKING] notification failed for %s: %v", booking.ID, err)
			return models.Booking{}, nil, ErrNotifyFailed
		}
	} else {
		// Fire-and-forget; the ledger commit never waits on the network.
		go func() {
			if err := s.notifier.Send(notice); err != nil {
				log.Printf("[BOOKING] notification failed for %s: %v", booking.ID, err)
			}
		}()
	}

	s.store.CommitBooking(booking)
	cart.Clear()

	return booking, nil, nil
}
