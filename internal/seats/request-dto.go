package seats

type CreateSeatRequest struct {
	Section    string  `json:"section" binding:"required"`
	RowNumber  string  `json:"row_number" binding:"required"`
	SeatNumber string  `json:"seat_number" binding:"required"`
	SeatType   string  `json:"seat_type"`
	Price      float64 `json:"price" binding:"gte=0"`
}

type CreateSeatsRequest struct {
	StadiumID string              `json:"stadium_id" binding:"required,uuid"`
	Seats     []CreateSeatRequest `json:"seats" binding:"required,min=1,dive"`
}

type UpdateSeatRequest struct {
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	SeatType    *string  `json:"seat_type,omitempty"`
}
