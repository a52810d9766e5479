package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithCustomerID adds customer ID to logger context
func (l *Logger) WithCustomerID(customerID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("customer_id", customerID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// Business logic logging methods

// LogSeatBooked logs a successful direct seat booking
func (l *Logger) LogSeatBooked(ctx context.Context, bookingID, ticketID, seatID, eventID, customerID string) {
	l.Logger.InfoContext(ctx,
		"Seat Booked",
		slog.String("booking_id", bookingID),
		slog.String("ticket_id", ticketID),
		slog.String("seat_id", seatID),
		slog.String("event_id", eventID),
		slog.String("customer_id", customerID),
	)
}

// LogOrderStaged logs the creation of a pending payment order
func (l *Logger) LogOrderStaged(ctx context.Context, orderID, eventID, customerID string, amount float64, seatCount int) {
	l.Logger.InfoContext(ctx,
		"Payment Order Staged",
		slog.String("order_id", orderID),
		slog.String("event_id", eventID),
		slog.String("customer_id", customerID),
		slog.Float64("amount", amount),
		slog.Int("seats", seatCount),
	)
}

// LogPaymentCaptured logs a successful payment capture
func (l *Logger) LogPaymentCaptured(ctx context.Context, bookingID, orderID, transactionID string, amount float64) {
	l.Logger.InfoContext(ctx,
		"Payment Captured",
		slog.String("booking_id", bookingID),
		slog.String("order_id", orderID),
		slog.String("transaction_id", transactionID),
		slog.Float64("amount", amount),
	)
}

// LogBookingConflict logs a booking attempt rejected by the ledger check
func (l *Logger) LogBookingConflict(ctx context.Context, eventID string, seatIDs []string) {
	l.Logger.WarnContext(ctx,
		"Booking Conflict",
		slog.String("event_id", eventID),
		slog.Any("seat_ids", seatIDs),
	)
}

// Security logging methods

// LogSecurityViolation logs a capture attempt against another customer's order
func (l *Logger) LogSecurityViolation(ctx context.Context, orderID, customerID, reason string) {
	l.Logger.ErrorContext(ctx,
		"Security Violation",
		slog.String("order_id", orderID),
		slog.String("customer_id", customerID),
		slog.String("reason", reason),
	)
}

// Side-effect logging methods

// LogDispatchFailure logs a swallowed post-commit notification failure
func (l *Logger) LogDispatchFailure(ctx context.Context, kind, bookingID string, err error) {
	l.Logger.WarnContext(ctx,
		"Post-Commit Dispatch Failed",
		slog.String("kind", kind),
		slog.String("booking_id", bookingID),
		slog.String("error", err.Error()),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
