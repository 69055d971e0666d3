package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	bk "github.com/noshecambridge/booking-backend/booking"
)

type BookingService interface {
	CreateBooking(ctx context.Context, b bk.Booking) (bk.Booking, error)
	FindBookingsForDay(ctx context.Context, day bk.Date) ([]bk.Booking, error)
	WeeklyBookingCounts(ctx context.Context, start time.Time) ([7]int, error)
	ExportBookings(ctx context.Context, options bk.ExportOptions) ([]byte, string, error)
	EditBooking(ctx context.Context, id string, update bk.Update) error
	CancelBooking(ctx context.Context, id string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register wires the booking endpoints. Everything is POST; the edit
// endpoint also answers cross-origin pre-flight, which the dashboard's
// fetch sends. adminOnly gates the dashboard-facing endpoints.
func (h *BookingHandler) Register(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	editCORS := cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	})

	rg.POST("", h.Create)
	rg.POST("/query", adminOnly, h.Query)
	rg.POST("/weekly", adminOnly, h.Weekly)
	rg.POST("/export", adminOnly, h.Export)
	rg.OPTIONS("/edit", editCORS)
	rg.POST("/edit", editCORS, adminOnly, h.Edit)
	rg.POST("/cancel", adminOnly, h.Cancel)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var booking bk.Booking

	if err := c.BindJSON(&booking); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid booking request",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), booking)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "There was an error processing your booking. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Booking confirmed successfully!",
		"bookingId": inserted.ID,
	})
}

type queryRequest struct {
	Date bk.Date `json:"date" binding:"required"`
}

func (h *BookingHandler) Query(c *gin.Context) {
	var req queryRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse date",
		})
		return
	}

	bookings, err := h.service.FindBookingsForDay(c.Request.Context(), req.Date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch bookings",
		})
		return
	}

	if bookings == nil {
		bookings = []bk.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

// weeklyRequest carries the dashboard's week range. The service anchors
// the window on start; end is accepted for compatibility with existing
// clients but the buckets always cover the anchored 7-day week.
type weeklyRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

func (h *BookingHandler) Weekly(c *gin.Context) {
	var req weeklyRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse date range",
		})
		return
	}

	counts, err := h.service.WeeklyBookingCounts(c.Request.Context(), req.Start)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": counts})
}

type exportRequest struct {
	ExportAll  bool     `json:"exportAll"`
	Date       *bk.Date `json:"date"`
	ExportType string   `json:"exportType"`
	Sort       string   `json:"sort"`
}

func (h *BookingHandler) Export(c *gin.Context) {
	var req exportRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if req.ExportType != "" && req.ExportType != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unsupported export type",
		})
		return
	}

	options := bk.ExportOptions{
		All:        req.ExportAll,
		SortByTime: req.Sort == "time",
	}

	if !req.ExportAll {
		if req.Date == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "date is required unless exporting all bookings",
			})
			return
		}
		options.Day = *req.Date
	}

	csv, filename, err := h.service.ExportBookings(c.Request.Context(), options)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to export bookings",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", csv)
}

type editRequest struct {
	ID string `json:"id"`
	bk.Update
}

func (h *BookingHandler) Edit(c *gin.Context) {
	var req editRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "booking id is required",
		})
		return
	}

	err := h.service.EditBooking(c.Request.Context(), req.ID, req.Update)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to update booking",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "booking updated",
	})
}

type cancelRequest struct {
	BookingID string `json:"bookingId"`
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req cancelRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "booking id is required",
		})
		return
	}

	err := h.service.CancelBooking(c.Request.Context(), req.BookingID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to cancel booking",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "booking cancelled",
	})
}
