package seats

type SeatAvailability struct {
	ID         string  `json:"id"`
	RowNumber  string  `json:"row_number"`
	SeatNumber string  `json:"seat_number"`
	SeatType   string  `json:"seat_type"`
	Price      float64 `json:"price"`
	Available  bool    `json:"available"`
}

type SectionAvailability struct {
	TotalSeats     int                `json:"total_seats"`
	AvailableSeats int                `json:"available_seats"`
	Seats          []SeatAvailability `json:"seats"`
}

type EventAvailability struct {
	EventID        string                          `json:"event_id"`
	EventName      string                          `json:"event_name"`
	StadiumName    string                          `json:"stadium_name"`
	Sections       map[string]*SectionAvailability `json:"sections"`
	TotalAvailable int                             `json:"total_available"`
	TotalCapacity  int                             `json:"total_capacity"`
}
