package snacks

// MenuItem is one row of the public snack menu.
type MenuItem struct {
	ID       string  `json:"id"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	LowStock bool    `json:"lowStock"`
	Trending bool    `json:"trending"`
}

// OrderLineResponse reports one fulfilled line including the stock left
// behind, so clients can warn about items running out.
type OrderLineResponse struct {
	SnackID   string  `json:"snackId"`
	ItemName  string  `json:"itemName"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
	Remaining int     `json:"remaining"`
	LowStock  bool    `json:"lowStock"`
}
