package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultCategory = "Other"

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description *string            `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    *string            `bson:"image_url" json:"image_url"`
	IsAvailable bool               `bson:"is_available" json:"is_available"`
	CreatedAt   time.Time          `bson:"created_at" json:"-"`
}

// SampleMenu returns the dishes inserted by a menu seed.
func SampleMenu() []MenuItem {
	return []MenuItem{
		sample("Margherita Pizza", "Classic pizza with tomato, mozzarella, basil", 10.99, "Mains", "https://images.unsplash.com/photo-1548365328-9f547fb0953c"),
		sample("Caesar Salad", "Romaine, parmesan, croutons, caesar dressing", 8.5, "Starters", "https://images.unsplash.com/photo-1551183053-bf91a1d81141"),
		sample("Spaghetti Bolognese", "Rich beef ragu over spaghetti", 13.25, "Mains", "https://images.unsplash.com/photo-1523986371872-9d3ba2e2a389"),
		sample("Lemonade", "Freshly squeezed lemonade", 3.75, "Drinks", "https://images.unsplash.com/photo-1497534446932-c925b458314e"),
		sample("Chocolate Brownie", "Warm brownie with vanilla ice cream", 6.0, "Desserts", "https://images.unsplash.com/photo-1606313564200-e75d5e30476e"),
	}
}

func sample(name, description string, price float64, category, imageURL string) MenuItem {
	return MenuItem{
		Name:        name,
		Description: &description,
		Price:       price,
		Category:    category,
		ImageURL:    &imageURL,
		IsAvailable: true,
	}
}
