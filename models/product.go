package models

import "time"

// Product represents a catalog item.
type Product struct {
	ID          string    `bson:"id" json:"id"`                 // Unique product identifier (UUID).
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`           // Unit price.
	Stock       int       `bson:"stock" json:"stock"`           // Units available.
	Rating      float64   `bson:"rating" json:"rating"`         // Average customer rating, 0 when unrated.
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
