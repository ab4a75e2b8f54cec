package handlers

import (
	"context"
	"net/http"
	"strconv"

	"ayursutra/middleware"
	"ayursutra/models"
	"ayursutra/services/scheduling"
	"ayursutra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking and session endpoints.
type BookingHandler struct {
	Scheduler scheduling.SchedulingService
	Logger    *zap.Logger
}

func NewBookingHandler(scheduler scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Scheduler: scheduler, Logger: logger}
}

// respondSchedulingError maps service error codes onto HTTP statuses.
func respondSchedulingError(c *gin.Context, err error) {
	switch scheduling.ErrorCode(err) {
	case scheduling.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case scheduling.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	case scheduling.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case scheduling.CodeConflict:
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
	}
}

// CreateBookingHandler books a therapy course for the authenticated patient.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing identity", "")
		return
	}

	var input scheduling.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Scheduler.CreateBooking(c.Request.Context(), identity, input)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	h.Logger.Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("patientId", identity.ID),
		zap.Time("assignedDate", booking.AssignedDate))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed on " + booking.AssignedDate.Format("Mon, 02 Jan 2006"),
		"booking": booking,
	})
}

// MyBookingsHandler lists the authenticated patient's bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	bookings, err := h.Scheduler.GetPatientBookings(c.Request.Context(), identity.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// PractitionerBookingsHandler lists the authenticated practitioner's bookings.
func (h *BookingHandler) PractitionerBookingsHandler(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	bookings, err := h.Scheduler.GetPractitionerBookings(c.Request.Context(), identity.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// RescheduleAllHandler runs the bulk reschedule sweep on demand.
func (h *BookingHandler) RescheduleAllHandler(c *gin.Context) {
	updated, changed, err := h.Scheduler.RescheduleAll(c.Request.Context())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Sessions auto-rescheduled successfully",
		"changed":         changed,
		"updatedBookings": updated,
	})
}

// RescheduleOneHandler applies the sweep rule to a single booking.
func (h *BookingHandler) RescheduleOneHandler(c *gin.Context) {
	booking, changed, err := h.Scheduler.RescheduleBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	message := "No sessions needed rescheduling"
	if changed {
		message = "Booking sessions auto-rescheduled"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"changed": changed,
		"booking": booking,
	})
}

// CompleteSessionHandler marks one session completed. Practitioner only.
func (h *BookingHandler) CompleteSessionHandler(c *gin.Context) {
	h.updateSession(c, h.Scheduler.MarkSessionComplete, "Session marked complete")
}

// MissSessionHandler marks one session missed. Practitioner only.
func (h *BookingHandler) MissSessionHandler(c *gin.Context) {
	h.updateSession(c, h.Scheduler.MarkSessionMissed, "Session marked missed")
}

func (h *BookingHandler) updateSession(
	c *gin.Context,
	apply func(ctx context.Context, actor models.Identity, bookingID string, sessionIndex int) (*models.Booking, error),
	message string,
) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing identity", "")
		return
	}

	sessionIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid session index", err.Error())
		return
	}

	booking, err := apply(c.Request.Context(), identity, c.Param("id"), sessionIndex)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "booking": booking})
}
