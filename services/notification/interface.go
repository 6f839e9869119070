package notification

import (
	"context"
	"encoding/json"
	"fmt"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingNotify is the asynq task type for booking notification mail.
const TypeBookingNotify = "notify:booking"

// NotificationService produces calendar artifacts for booking
// transitions and hands their delivery to the mail queue. Generating
// the artifact is synchronous and authoritative; delivery is
// best-effort background work retried by the queue, never by the
// engine.
type NotificationService interface {
	BookingApproved(ctx context.Context, b *models.Booking) (*models.CalendarArtifact, error)
	BookingCancelled(ctx context.Context, b *models.Booking) (*models.CalendarArtifact, error)
	// DeliverBookingMail is the worker-side handler: it re-reads the
	// booking, regenerates the artifact, and sends the mail.
	DeliverBookingMail(ctx context.Context, p models.NotifyPayload) error
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Bookings  bookingRepo.BookingRepository
	Generator *ArtifactGenerator
	Queue     *asynq.Client // nil disables delivery (artifacts still generated)
	Mailer    Mailer
}

func (n *DefaultNotificationService) BookingApproved(ctx context.Context, b *models.Booking) (*models.CalendarArtifact, error) {
	return n.emit(ctx, b, models.ArtifactMethodPublish)
}

func (n *DefaultNotificationService) BookingCancelled(ctx context.Context, b *models.Booking) (*models.CalendarArtifact, error) {
	return n.emit(ctx, b, models.ArtifactMethodCancel)
}

func (n *DefaultNotificationService) emit(ctx context.Context, b *models.Booking, method string) (*models.CalendarArtifact, error) {
	artifact, err := n.Generator.Build(b, method)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar artifact: %w", err)
	}
	n.enqueue(b.ID, method)
	return artifact, nil
}

// enqueue schedules the delivery task. A queue failure is logged and
// swallowed: the transition has already committed and the artifact is
// regenerable, so delivery must not fail the caller.
func (n *DefaultNotificationService) enqueue(bookingID, method string) {
	logger := utils.GetLogger()
	if n.Queue == nil {
		return
	}
	payload, err := json.Marshal(models.NotifyPayload{BookingID: bookingID, Method: method})
	if err != nil {
		logger.Error("failed to marshal notify payload", zap.Error(err))
		return
	}
	if _, err := n.Queue.Enqueue(asynq.NewTask(TypeBookingNotify, payload)); err != nil {
		logger.Error("failed to enqueue booking notification",
			zap.String("bookingID", bookingID), zap.String("method", method), zap.Error(err))
	}
}

// DeliverBookingMail regenerates the artifact from the stored booking
// and sends it. The stable UID means a regenerated CANCEL still
// correlates with the original PUBLISH on the client's calendar.
func (n *DefaultNotificationService) DeliverBookingMail(ctx context.Context, p models.NotifyPayload) error {
	b, err := n.Bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking %s for notification: %w", p.BookingID, err)
	}

	// The booking can leave the calendar between enqueue and delivery;
	// a confirmation for a no-longer-active booking must not go out.
	// The cancellation's own task carries the CANCEL mail.
	if p.Method == models.ArtifactMethodPublish && !b.IsActive() {
		utils.GetLogger().Info("skipping stale booking confirmation",
			zap.String("bookingID", b.ID), zap.String("status", b.Status))
		return nil
	}

	artifact, err := n.Generator.Build(b, p.Method)
	if err != nil {
		return fmt.Errorf("failed to rebuild calendar artifact: %w", err)
	}

	var subject string
	switch p.Method {
	case models.ArtifactMethodCancel:
		subject = fmt.Sprintf("Booking cancelled: %s %s", b.Date, b.StartTime)
	default:
		subject = fmt.Sprintf("Booking confirmed: %s %s", b.Date, b.StartTime)
	}
	body := mailBody(b, p.Method)

	if err := n.Mailer.Send(b.Email, subject, body, RenderICS(*artifact)); err != nil {
		return fmt.Errorf("failed to send booking mail: %w", err)
	}
	utils.GetLogger().Info("booking notification sent",
		zap.String("bookingID", b.ID), zap.String("method", p.Method), zap.String("to", b.Email))
	return nil
}

func mailBody(b *models.Booking, method string) string {
	if method == models.ArtifactMethodCancel {
		msg := fmt.Sprintf("Hi %s,\n\nYour practice room booking on %s at %s has been cancelled.",
			b.BandName, b.Date, b.StartTime)
		if b.CancelReason != "" {
			msg += fmt.Sprintf("\nReason: %s", b.CancelReason)
		}
		return msg + "\n"
	}
	return fmt.Sprintf("Hi %s,\n\nYour practice room booking on %s at %s (%dh) is confirmed.\nThe attached calendar invite adds it to your calendar.\n",
		b.BandName, b.Date, b.StartTime, b.DurationHours)
}
