package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const bookingColumns = `id, name, email, phone, date, "time", guests, COALESCE(special_requests, '')`

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO bookings(name, email, phone, date, "time", guests, special_requests)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;
		`

	err := r.pool.QueryRow(ctx, sql,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Date.Time,
		booking.Time,
		booking.Guests,
		booking.SpecialRequests,
	).Scan(&booking.ID)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

// GetBookingsInRange returns bookings whose date falls in [start, end),
// at day granularity in UTC. The parameters are cast to date so the
// comparison never goes through the session-timezone timestamptz casts.
func (r *Repository) GetBookingsInRange(ctx context.Context, start, end time.Time) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
            FROM bookings
            WHERE date >= $1::date AND date < $2::date;
        `

	rows, err := r.pool.Query(ctx, sql, start.UTC(), end.UTC())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetAllBookings(ctx context.Context) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

// UpdateBooking patches the fields set in update, leaving nil fields as stored.
func (r *Repository) UpdateBooking(ctx context.Context, id string, update Update) error {
	sql := `
			UPDATE bookings
			SET
				name=COALESCE($1, name),
				email=COALESCE($2, email),
				phone=COALESCE($3, phone),
				date=COALESCE($4, date),
				"time"=COALESCE($5, "time"),
				guests=COALESCE($6, guests),
				special_requests=COALESCE($7, special_requests)
			WHERE id=$8;
		`

	var date *time.Time
	if update.Date != nil {
		date = &update.Date.Time
	}

	tag, err := r.pool.Exec(ctx, sql,
		update.Name,
		update.Email,
		update.Phone,
		date,
		update.Time,
		update.Guests,
		update.SpecialRequests,
		id,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	sql := `DELETE FROM bookings WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.Date.Time,
			&booking.Time,
			&booking.Guests,
			&booking.SpecialRequests,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}
