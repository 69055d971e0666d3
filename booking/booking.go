package booking

import (
	"fmt"
	"strings"
	"time"
)

// Booking is a customer's table reservation. ID is assigned by the store on
// insert and empty before that.
type Booking struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Date            Date   `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// Update carries a partial edit; nil fields keep their stored value.
type Update struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Date            *Date   `json:"date"`
	Time            *string `json:"time"`
	Guests          *int    `json:"guests"`
	SpecialRequests *string `json:"specialRequests"`
}

// Date is a date-only value in UTC. It marshals as "2006-01-02"; anything
// else is rejected when binding the request body.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid booking date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
