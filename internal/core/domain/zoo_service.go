package domain

// ZooService is an amenity offered to visitors (restaurant, guided tour, ...).
type ZooService struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
