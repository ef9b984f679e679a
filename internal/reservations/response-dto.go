package reservations

// TicketResponse is one allocated seat as the client renders it.
type TicketResponse struct {
	RowNo    int     `json:"rowNo"`
	SeatNo   int     `json:"seatNo"`
	ScreenNo int     `json:"screenNo"`
	Price    float64 `json:"price"`
}

// SnackLineResponse is one snack order line in a confirmation summary.
type SnackLineResponse struct {
	ItemName string  `json:"itemName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// BookingResponse is the "ticket" payload returned by book and confirm.
// Snacks and EmployeeName are only populated on confirmation.
type BookingResponse struct {
	ReservationID string              `json:"reservationId"`
	MovieTitle    string              `json:"movieTitle"`
	Status        Status              `json:"status"`
	ShowDate      string              `json:"showDate"`
	ShowTime      string              `json:"showTime"`
	ScreenNo      int                 `json:"screenNo"`
	Tickets       []TicketResponse    `json:"tickets"`
	Snacks        []SnackLineResponse `json:"snacks,omitempty"`
	EmployeeName  string              `json:"employeeName,omitempty"`
}
