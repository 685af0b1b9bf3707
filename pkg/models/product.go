package models

type Product struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	ProductName string  `json:"product_name,omitempty"`
	Branch      string  `json:"branch"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// MovementProduct is the product summary embedded in a movement.
type MovementProduct struct {
	Nome   string `json:"nome"`
	Imagem string `json:"imagem"`
}
