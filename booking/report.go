package booking

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// csvColumns is the fixed export projection; the dashboard and its
// spreadsheet consumers rely on this exact order.
var csvColumns = []string{"name", "email", "phone", "date", "time", "guests", "specialRequests"}

// WeeklyCounts buckets bookings into 7 counters by weekday, indexed relative
// to weekStart: index 0 is weekStart's day, index 6 the day before it.
func WeeklyCounts(bookings []Booking, weekStart time.Weekday) [7]int {
	var counts [7]int

	for _, b := range bookings {
		idx := (int(b.Date.Weekday()) - int(weekStart) + 7) % 7
		counts[idx]++
	}

	return counts
}

// StartOfWeek returns the most recent weekStart day at or before t,
// truncated to UTC midnight. The matching window is [start, start+7d).
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// WriteCSV writes the bookings as CSV with a header row, one row per
// booking, in the order given.
func WriteCSV(w io.Writer, bookings []Booking) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return err
	}

	for _, b := range bookings {
		record := []string{
			b.Name,
			b.Email,
			b.Phone,
			b.Date.String(),
			b.Time,
			strconv.Itoa(b.Guests),
			b.SpecialRequests,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SortByTime orders bookings by their time-of-day string ("19:30"), in
// place. Export output is unordered unless the caller asks for this.
func SortByTime(bookings []Booking) {
	slices.SortStableFunc(bookings, func(a, b Booking) int {
		return strings.Compare(a.Time, b.Time)
	})
}
