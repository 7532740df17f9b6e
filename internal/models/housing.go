package models

// Entity is anything a catalog store can hold and delete by id.
type Entity interface {
	EntityID() int
}

// Known housing statuses. The set is open; seed data may use other values.
const (
	StatusAvailable = "Available"
	StatusActive    = "Active"
	StatusSold      = "Sold"
	StatusRented    = "Rented"
)

// Housing represents a property listing shown in the catalog.
// The same shape is used for a user's own properties and favorites.
type Housing struct {
	ID          int     `bson:"_id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Location    string  `bson:"location" json:"location"`
	Price       float64 `bson:"price" json:"price"` // IDR
	Bedrooms    int     `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int     `bson:"bathrooms" json:"bathrooms"`
	Area        float64 `bson:"area" json:"area"` // square meters
	Image       string  `bson:"image" json:"image"`
	Rating      float64 `bson:"rating" json:"rating"`
	Status      string  `bson:"status" json:"status"`
	Type        string  `bson:"type,omitempty" json:"type,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	PostedDays  *int    `bson:"posted_days,omitempty" json:"postedDays,omitempty"`
}

func (h Housing) EntityID() int { return h.ID }
