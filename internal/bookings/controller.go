package bookings

import (
	"net/http"

	"cricverse/internal/shared/middleware"
	"cricverse/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// BookSeat handles POST /api/v1/bookings/seat
func (c *Controller) BookSeat(ctx *gin.Context) {
	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req BookSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seatID, _ := uuid.Parse(req.SeatID)
	eventID, _ := uuid.Parse(req.EventID)

	result := c.service.BookSeat(ctx.Request.Context(), seatID, eventID, customerID)
	if !result.Success {
		response.RespondDomainFailure(ctx, statusForCode(result.ErrorCode), result.Message, result.ErrorCode, conflictErrors(result.ConflictSeatIDs))
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, result.Message, result, nil)
}

// CreatePaymentOrder handles POST /api/v1/bookings/orders
func (c *Controller) CreatePaymentOrder(ctx *gin.Context) {
	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	eventID, _ := uuid.Parse(req.EventID)
	seatIDs := make([]uuid.UUID, 0, len(req.SeatIDs))
	for _, raw := range req.SeatIDs {
		id, _ := uuid.Parse(raw)
		seatIDs = append(seatIDs, id)
	}

	result := c.service.CreatePaymentOrder(ctx.Request.Context(), customerID, eventID, seatIDs)
	if !result.Success {
		response.RespondDomainFailure(ctx, statusForCode(result.ErrorCode), result.Message, result.ErrorCode, conflictErrors(result.ConflictSeatIDs))
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, result.Message, result, nil)
}

// CapturePayment handles POST /api/v1/bookings/capture
func (c *Controller) CapturePayment(ctx *gin.Context) {
	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CapturePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result := c.service.CapturePayment(ctx.Request.Context(), customerID, req.OrderID, req.PaymentMethod, req.TransactionID)
	if !result.Success {
		response.RespondDomainFailure(ctx, statusForCode(result.ErrorCode), result.Message, result.ErrorCode, conflictErrors(result.ConflictSeatIDs))
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, result.Message, result, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		return
	}

	// Customers may only read their own bookings
	if booking.CustomerID != customerID {
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking details", booking, nil)
}

// GetMyBookings handles GET /api/v1/bookings
func (c *Controller) GetMyBookings(ctx *gin.Context) {
	customerID, ok := middleware.CustomerID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	page, err := c.service.GetCustomerBookings(ctx.Request.Context(), customerID, query.Limit, query.Offset)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking history", page, nil)
}

// statusForCode maps structured failure codes to HTTP statuses
func statusForCode(code string) int {
	switch code {
	case CodeSeatNotFound, CodeSeatsNotFound, CodeNoPendingOrder:
		return http.StatusNotFound
	case CodeSeatAlreadyBooked, CodeSeatsAlreadyBooked, CodeSeatsNoLongerAvailable:
		return http.StatusConflict
	case CodeOrderIDMismatch, CodeCustomerIDMismatch:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func conflictErrors(seatIDs []uuid.UUID) interface{} {
	if len(seatIDs) == 0 {
		return nil
	}
	return map[string]interface{}{"conflict_seat_ids": seatIDs}
}
