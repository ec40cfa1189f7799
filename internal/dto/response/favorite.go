package response

type FavoriteToggleResponse struct {
	SalonID  string `json:"salon_id"`
	Favorite bool   `json:"favorite"`
}

type FavoritesResponse struct {
	Salons []SalonResponse `json:"salons"`
}
