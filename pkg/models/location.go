package models

// Branch is a physical inventory location used as movement origin or destination.
type Branch struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Place is a named coordinate embedded in a movement.
type Place struct {
	Nome      string  `json:"nome"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
