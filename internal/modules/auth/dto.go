package auth

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	// Contractor profile
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Skills     []string `json:"skills"`
	HourlyRate *float64 `json:"hourly_rate"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
