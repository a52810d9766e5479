package bookings

// BookSeatRequest books one seat for an event on the direct path
type BookSeatRequest struct {
	SeatID  string `json:"seat_id" binding:"required,uuid"`
	EventID string `json:"event_id" binding:"required,uuid"`
}

// CreateOrderRequest stages a multi-seat order ahead of external
// payment
type CreateOrderRequest struct {
	EventID string   `json:"event_id" binding:"required,uuid"`
	SeatIDs []string `json:"seat_ids" binding:"required,min=1,dive,uuid"`
}

// CapturePaymentRequest commits a staged order after the gateway
// confirmed payment. TransactionID is the gateway's identifier and
// doubles as the idempotency key.
type CapturePaymentRequest struct {
	OrderID       string `json:"order_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	TransactionID string `json:"transaction_id" binding:"required"`
}

// BookingListQuery paginates a customer's booking history
type BookingListQuery struct {
	Limit  int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
