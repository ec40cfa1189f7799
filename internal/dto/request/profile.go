package request

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=60"`
	Email string `json:"email" validate:"omitempty,email"`
	Image string `json:"image" validate:"omitempty"`
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,min=2,max=8"`
}
