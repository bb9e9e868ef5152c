// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rental-backend/availability"
	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	PropertyID uint    `json:"property_id" binding:"required"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	UserName   *string `json:"user_name"`
	Phone      *string `json:"phone"`
}

type UpdateBookingRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	UserName  *string `json:"user_name"`
	Phone     *string `json:"phone"`
}

// BookingResponse keeps dates in the YYYY-MM-DD wire format; the stored type
// carries no time-of-day either.
type BookingResponse struct {
	ID            uint    `json:"id"`
	PropertyID    uint    `json:"property_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	ReferenceCode string  `json:"reference_code,omitempty"`
	UserName      *string `json:"user_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
}

func toBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		StartDate:     time.Time(b.StartDate).Format(availability.DateLayout),
		EndDate:       time.Time(b.EndDate).Format(availability.DateLayout),
		ReferenceCode: b.ReferenceCode,
		UserName:      b.UserName,
		Phone:         b.Phone,
	}
}

func toBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking accepts guest bookings: only the property and the date span
// are required. Dates on writes are strict, unlike the permissive read paths.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, ok := availability.ParseDate(req.StartDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, ok := availability.ParseDate(req.EndDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	booking, err := bc.BookingSvc.Create(services.BookingInput{
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
		UserName:   req.UserName,
		Phone:      req.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toBookingResponse(booking))
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	booking, err := bc.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(booking))
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	update := services.BookingUpdate{UserName: req.UserName, Phone: req.Phone}
	if req.StartDate != nil {
		t, ok := availability.ParseDate(*req.StartDate)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		update.StartDate = &t
	}
	if req.EndDate != nil {
		t, ok := availability.ParseDate(*req.EndDate)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		update.EndDate = &t
	}

	booking, err := bc.BookingSvc.Update(id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(booking))
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := bc.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

func (bc *BookingController) ListBookings(c *gin.Context) {
	limit, offset := utils.ParsePagination(c.Request.URL.Query())
	bookings, count, err := bc.BookingSvc.List(uintQuery(c, "property_id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, count, toBookingResponses(bookings))
}

// PropertyBookings lists the bookings of one property that overlap the
// requested window. Absent or malformed dates silently fall back to the
// rolling default window (today through the end of next month).
func (bc *BookingController) PropertyBookings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	window := availability.ParseWindow(c.Query("start_date"), c.Query("end_date"), time.Now())
	bookings, err := bc.BookingSvc.OverlappingBookings(id, window)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, int64(len(bookings)), toBookingResponses(bookings))
}
