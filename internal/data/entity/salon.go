package entity

type SalonStatus string

const (
	SalonStatusOpen   SalonStatus = "Open"
	SalonStatusClosed SalonStatus = "Closed"
)

type ServiceCategory string

const (
	CategoryMen    ServiceCategory = "men"
	CategoryWomen  ServiceCategory = "women"
	CategoryUnisex ServiceCategory = "unisex"
)

// Service is one priced offering of a salon. Name acts as the natural key
// within a single salon's list.
type Service struct {
	Name     string          `json:"name"`
	Price    int             `json:"price"`
	Duration string          `json:"duration"`
	Category ServiceCategory `json:"category"`
}

type SalonImage struct {
	URL string `json:"url"`
}

// Salon is a static catalog entry. The catalog is read-only for the lifetime
// of the process.
type Salon struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Services     string       `json:"services"` // display summary, e.g. "Hair Cut • Facial Treatment"
	Rating       string       `json:"rating"`   // decimal string, e.g. "4.8"
	Status       SalonStatus  `json:"status"`
	Hours        string       `json:"hours"`
	Waiting      string       `json:"waiting"`
	Time         string       `json:"time"`
	Phone        string       `json:"phone"`
	RatingCount  int          `json:"ratingCount"`
	Image        string       `json:"image"`
	DetailImages []SalonImage `json:"detailImages"`
	ServicesList []Service    `json:"servicesList"`
}

func (s *Salon) IsClosed() bool {
	return s.Status == SalonStatusClosed
}

// FindService looks a service up by its name.
func (s *Salon) FindService(name string) (Service, int, bool) {
	for i, svc := range s.ServicesList {
		if svc.Name == name {
			return svc, i, true
		}
	}
	return Service{}, -1, false
}

// Catalog maps a location name to its salons.
type Catalog map[string][]Salon
