package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the router wires up.
type HandlerBundle struct {
	// User endpoints.
	RegisterUserHandler      gin.HandlerFunc
	AuthenticateUserHandler  gin.HandlerFunc
	MeHandler                gin.HandlerFunc
	ListPractitionersHandler gin.HandlerFunc

	// Therapy endpoints.
	CreateTherapyHandler gin.HandlerFunc
	ListTherapiesHandler gin.HandlerFunc
	GetTherapyHandler    gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler        gin.HandlerFunc
	MyBookingsHandler           gin.HandlerFunc
	PractitionerBookingsHandler gin.HandlerFunc
	RescheduleAllHandler        gin.HandlerFunc
	RescheduleOneHandler        gin.HandlerFunc
	CompleteSessionHandler      gin.HandlerFunc
	MissSessionHandler          gin.HandlerFunc
}
