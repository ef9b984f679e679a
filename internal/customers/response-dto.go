package customers

// CustomerResponse is the user object returned by signup and login.
// Password never leaves the package.
type CustomerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

func (c *Customer) ToResponse() CustomerResponse {
	return CustomerResponse{
		ID:     c.ID.String(),
		Name:   c.Name,
		Email:  c.Email,
		Age:    c.Age,
		Gender: c.Gender,
	}
}
