package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noshecambridge/booking-backend/api"
	mock_api "github.com/noshecambridge/booking-backend/api/mocks"
	bk "github.com/noshecambridge/booking-backend/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	handler.Register(router.Group("/api/bookings"), passthrough())

	return router, ctrl, mockService
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

var validIntake = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "07700900123",
	"date": "2026-03-14",
	"time": "19:30",
	"guests": 4,
	"specialRequests": "highchair"
}`

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		inserted := bk.Booking{ID: "123", Name: "Jane Doe"}
		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(inserted, nil).Times(1)

		w := postJSON(router, "/api/bookings", validIntake)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Booking confirmed successfully!","bookingId":"123"}`, w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings", "{")

		assert.Equal(t, 400, w.Code)
	})

	t.Run("missing required field", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings", `{"name":"Jane Doe"}`)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("unparseable date", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings", `{
			"name": "Jane Doe",
			"email": "jane@example.com",
			"phone": "07700900123",
			"date": "next friday",
			"time": "19:30",
			"guests": 4
		}`)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bk.Booking{}, assert.AnError).Times(1)

		w := postJSON(router, "/api/bookings", validIntake)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"There was an error processing your booking. Please try again."}`, w.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 405, w.Code)
	})
}

func TestQuery(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		day := bk.NewDate(2026, time.March, 14)
		bookings := []bk.Booking{{ID: "1", Name: "Jane Doe", Date: day, Time: "19:30", Guests: 4, Email: "jane@example.com", Phone: "07700900123"}}
		bookingsJSON, _ := json.Marshal(bookings)
		mockService.EXPECT().FindBookingsForDay(gomock.Any(), day).Return(bookings, nil).Times(1)

		w := postJSON(router, "/api/bookings/query", `{"date":"2026-03-14"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"success":true,"bookings":`+string(bookingsJSON)+`}`, w.Body.String())
	})

	t.Run("no bookings yields empty list", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsForDay(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		w := postJSON(router, "/api/bookings/query", `{"date":"2026-03-14"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"success":true,"bookings":[]}`, w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings/query", `{"date":"bad"}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsForDay(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := postJSON(router, "/api/bookings/query", `{"date":"2026-03-14"}`)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch bookings"}`, w.Body.String())
	})
}

func TestWeekly(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		start := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
		counts := [7]int{1, 1, 1, 1, 1, 1, 1}
		mockService.EXPECT().WeeklyBookingCounts(gomock.Any(), start).Return(counts, nil).Times(1)

		w := postJSON(router, "/api/bookings/weekly", `{"start":"2026-02-03T00:00:00Z","end":"2026-02-10T00:00:00Z"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"bookings":[1,1,1,1,1,1,1]}`, w.Body.String())
	})

	t.Run("missing range", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings/weekly", `{"start":"2026-02-03T00:00:00Z"}`)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().WeeklyBookingCounts(gomock.Any(), gomock.Any()).Return([7]int{}, assert.AnError).Times(1)

		w := postJSON(router, "/api/bookings/weekly", `{"start":"2026-02-03T00:00:00Z","end":"2026-02-10T00:00:00Z"}`)

		assert.Equal(t, 500, w.Code)
	})
}

func TestExport(t *testing.T) {
	t.Run("export all", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		csv := []byte("name,email,phone,date,time,guests,specialRequests\n")
		mockService.EXPECT().
			ExportBookings(gomock.Any(), bk.ExportOptions{All: true}).
			Return(csv, "all_bookings.csv", nil).
			Times(1)

		w := postJSON(router, "/api/bookings/export", `{"exportAll":true}`)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="all_bookings.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, string(csv), w.Body.String())
	})

	t.Run("export single day with sort", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		day := bk.NewDate(2026, time.March, 14)
		mockService.EXPECT().
			ExportBookings(gomock.Any(), bk.ExportOptions{Day: day, SortByTime: true}).
			Return([]byte("csv"), "bookings_2026-03-14.csv", nil).
			Times(1)

		w := postJSON(router, "/api/bookings/export", `{"date":"2026-03-14","sort":"time"}`)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, `attachment; filename="bookings_2026-03-14.csv"`, w.Header().Get("Content-Disposition"))
	})

	t.Run("missing date", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings/export", `{}`)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("unsupported export type", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings/export", `{"exportAll":true,"exportType":"xlsx"}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"unsupported export type"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ExportBookings(gomock.Any(), gomock.Any()).Return(nil, "", assert.AnError).Times(1)

		w := postJSON(router, "/api/bookings/export", `{"exportAll":true}`)

		assert.Equal(t, 500, w.Code)
	})
}

func TestEdit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().
			EditBooking(gomock.Any(), "123", gomock.Any()).
			DoAndReturn(func(_ any, _ string, update bk.Update) error {
				require.NotNil(t, update.Guests)
				assert.Equal(t, 6, *update.Guests)
				assert.Nil(t, update.Name)
				return nil
			}).
			Times(1)

		w := postJSON(router, "/api/bookings/edit", `{"id":"123","guests":6}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"booking updated"}`, w.Body.String())
	})

	t.Run("missing id", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings/edit", `{"guests":6}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"booking id is required"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().EditBooking(gomock.Any(), "123", gomock.Any()).Return(bk.ErrBookingNotFound).Times(1)

		w := postJSON(router, "/api/bookings/edit", `{"id":"123","guests":6}`)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("OPTIONS", "/api/bookings/edit", nil)
		req.Header.Set("Origin", "https://noshecambridge.co.uk")
		req.Header.Set("Access-Control-Request-Method", "POST")
		router.ServeHTTP(w, req)

		assert.Equal(t, 204, w.Code)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCancel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), "123").Return(nil).Times(1)

		w := postJSON(router, "/api/bookings/cancel", `{"bookingId":"123"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"booking cancelled"}`, w.Body.String())
	})

	t.Run("missing id", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := postJSON(router, "/api/bookings/cancel", `{}`)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"booking id is required"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), "missing").Return(bk.ErrBookingNotFound).Times(1)

		w := postJSON(router, "/api/bookings/cancel", `{"bookingId":"missing"}`)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), "123").Return(assert.AnError).Times(1)

		w := postJSON(router, "/api/bookings/cancel", `{"bookingId":"123"}`)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to cancel booking"}`, w.Body.String())
	})
}
