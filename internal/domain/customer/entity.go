package customer

type Customer struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewCustomer validates the fields required at creation time.
// Phone is optional.
func NewCustomer(userID int64, name, email, phone, address string) (*Customer, error) {
	if userID <= 0 || name == "" || email == "" || address == "" {
		return nil, ErrMissingField
	}

	return &Customer{
		UserID:  userID,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}, nil
}
