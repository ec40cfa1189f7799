package entity

// Account is a registered user. Phone is the natural key for all lookups.
// Password holds a bcrypt hash, stored under the accounts key.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Profile is the single signed-in identity. Created at sign-up or sign-in,
// destroyed on logout.
type Profile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Image string `json:"image"` // data URL
}
