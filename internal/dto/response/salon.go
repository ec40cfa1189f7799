package response

import "salon-booking/internal/data/entity"

type ServiceResponse struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
	Category string `json:"category"`
}

type SalonResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Services    string             `json:"services"`
	Rating      string             `json:"rating"`
	RatingCount int                `json:"rating_count,omitempty"`
	Status      entity.SalonStatus `json:"status"`
	Hours       string             `json:"hours,omitempty"`
	Waiting     string             `json:"waiting,omitempty"`
	Time        string             `json:"time,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Image       string             `json:"image,omitempty"`
	Favorite    bool               `json:"favorite"`
}

type SalonDetailResponse struct {
	SalonResponse
	DetailImages []string          `json:"detail_images,omitempty"`
	ServicesList []ServiceResponse `json:"services_list"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// Helper converters. Name, address and service names come in already
// localized; the converter only shapes the payload.
func SalonToResponse(s *entity.Salon, name, address string, favorite bool) SalonResponse {
	return SalonResponse{
		ID:          s.ID,
		Name:        name,
		Address:     address,
		Services:    s.Services,
		Rating:      s.Rating,
		RatingCount: s.RatingCount,
		Status:      s.Status,
		Hours:       s.Hours,
		Waiting:     s.Waiting,
		Time:        s.Time,
		Phone:       s.Phone,
		Image:       s.Image,
		Favorite:    favorite,
	}
}

func SalonToDetailResponse(s *entity.Salon, name, address string, services []ServiceResponse, favorite bool) SalonDetailResponse {
	images := make([]string, 0, len(s.DetailImages))
	for _, img := range s.DetailImages {
		images = append(images, img.URL)
	}
	return SalonDetailResponse{
		SalonResponse: SalonToResponse(s, name, address, favorite),
		DetailImages:  images,
		ServicesList:  services,
	}
}
