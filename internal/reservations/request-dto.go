package reservations

type BookRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Age     int    `json:"age" binding:"required,min=1,max=120"`
	Gender  string `json:"gender" binding:"required,oneof=Male Female Other"`
	MovieID string `json:"movieId" binding:"required,uuid"`
	ShowID  string `json:"showId" binding:"required,uuid"`
	Seats   int    `json:"seats" binding:"required,min=1"`
}

type ReservationRefRequest struct {
	ReservationID string `json:"reservationId" binding:"required,uuid"`
}
