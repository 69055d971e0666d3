package booking

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/noshecambridge/booking-backend/mail"
)

type BookingRepository interface {
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	GetBookingsInRange(ctx context.Context, start, end time.Time) ([]Booking, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)
	UpdateBooking(ctx context.Context, id string, update Update) error
	DeleteBooking(ctx context.Context, id string) error
}

// NotificationConfig addresses the two intake emails.
type NotificationConfig struct {
	From      string
	ManagerTo string
}

type Service struct {
	repo      BookingRepository
	mailer    mail.Mailer
	notify    NotificationConfig
	weekStart time.Weekday
	logger    *slog.Logger
}

func NewService(repo BookingRepository, mailer mail.Mailer, notify NotificationConfig, weekStart time.Weekday) *Service {
	return &Service{
		repo:      repo,
		mailer:    mailer,
		notify:    notify,
		weekStart: weekStart,
		logger:    slog.Default().With("component", "booking-service"),
	}
}

// CreateBooking persists the booking, then sends the customer confirmation
// and the manager alert. The booking is successful once persisted; mail
// failures are logged and never surfaced.
func (s *Service) CreateBooking(ctx context.Context, booking Booking) (Booking, error) {
	inserted, err := s.repo.InsertBooking(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	s.sendNotifications(ctx, inserted)

	return inserted, nil
}

func (s *Service) FindBookingsForDay(ctx context.Context, day Date) ([]Booking, error) {
	start := day.Time
	end := start.AddDate(0, 0, 1)

	return s.repo.GetBookingsInRange(ctx, start, end)
}

// WeeklyBookingCounts returns 7 counters, one per weekday starting at the
// configured week start day, for the week containing start. The window is
// anchored server-side so every caller gets the same buckets for the same
// week regardless of the exact range it asked for.
func (s *Service) WeeklyBookingCounts(ctx context.Context, start time.Time) ([7]int, error) {
	windowStart := StartOfWeek(start, s.weekStart)
	windowEnd := windowStart.AddDate(0, 0, 7)

	bookings, err := s.repo.GetBookingsInRange(ctx, windowStart, windowEnd)

	if err != nil {
		return [7]int{}, err
	}

	return WeeklyCounts(bookings, s.weekStart), nil
}

type ExportOptions struct {
	All        bool
	Day        Date
	SortByTime bool
}

// ExportBookings renders the selected bookings as CSV and names the file
// after the exported day, or "all_bookings.csv" for a full export.
func (s *Service) ExportBookings(ctx context.Context, options ExportOptions) ([]byte, string, error) {
	var bookings []Booking
	var err error
	filename := "all_bookings.csv"

	if options.All {
		bookings, err = s.repo.GetAllBookings(ctx)
	} else {
		bookings, err = s.repo.GetBookingsInRange(ctx, options.Day.Time, options.Day.AddDate(0, 0, 1))
		filename = "bookings_" + options.Day.String() + ".csv"
	}

	if err != nil {
		return nil, "", err
	}

	if options.SortByTime {
		SortByTime(bookings)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, bookings); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), filename, nil
}

func (s *Service) EditBooking(ctx context.Context, id string, update Update) error {
	return s.repo.UpdateBooking(ctx, id, update)
}

func (s *Service) CancelBooking(ctx context.Context, id string) error {
	return s.repo.DeleteBooking(ctx, id)
}

// sendNotifications issues both intake emails concurrently and waits for
// the pair, logging individual failures.
func (s *Service) sendNotifications(ctx context.Context, booking Booking) {
	details := mail.BookingDetails{
		Name:            booking.Name,
		Email:           booking.Email,
		Phone:           booking.Phone,
		Date:            booking.Date.String(),
		Time:            booking.Time,
		Guests:          booking.Guests,
		SpecialRequests: booking.SpecialRequests,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		message, err := mail.CustomerConfirmation(s.notify.From, details)

		if err == nil {
			err = s.mailer.Send(ctx, message)
		}

		if err != nil {
			s.logger.Error("failed to send customer confirmation", "bookingId", booking.ID, "err", err)
		}

		return nil
	})

	g.Go(func() error {
		message, err := mail.ManagerAlert(s.notify.From, s.notify.ManagerTo, details)

		if err == nil {
			err = s.mailer.Send(ctx, message)
		}

		if err != nil {
			s.logger.Error("failed to send manager alert", "bookingId", booking.ID, "err", err)
		}

		return nil
	})

	g.Wait()
}
