package response

import "salon-booking/internal/data/entity"

type ProfileResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

type LanguageResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

// Helper converters
func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	if profile == nil {
		return ProfileResponse{}
	}
	return ProfileResponse{
		Name:  profile.Name,
		Phone: profile.Phone,
		Email: profile.Email,
		Image: profile.Image,
	}
}
