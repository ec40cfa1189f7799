package request

type SignInRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignUpStartRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignUpVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=4"`
}

type ForgotStartRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type ForgotVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=4"`
}

type ForgotResetRequest struct {
	Phone           string `json:"phone" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}
