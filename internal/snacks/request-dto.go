package snacks

type OrderLineRequest struct {
	SnackID  string `json:"snackId" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type OrderSnacksRequest struct {
	ReservationID string             `json:"reservationId" binding:"required,uuid"`
	Orders        []OrderLineRequest `json:"orders" binding:"required,min=1,dive"`
}
