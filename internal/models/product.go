package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the single persisted catalog entity.
type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Brand       string             `json:"brand" bson:"brand"`
	Size        string             `json:"size" bson:"size"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ProductInput is the create payload. Name is checked by the handler so the
// error body stays under our control.
type ProductInput struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

func (in ProductInput) Product() Product {
	return Product{
		Name:        in.Name,
		Brand:       in.Brand,
		Size:        in.Size,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	}
}

// ProductUpdate holds the fields a PUT may overwrite; nil means untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Size        *string  `json:"size,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

// SetDoc returns the $set document for the non-nil fields.
func (u ProductUpdate) SetDoc() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Brand != nil {
		set["brand"] = *u.Brand
	}
	if u.Size != nil {
		set["size"] = *u.Size
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.ImageURL != nil {
		set["imageUrl"] = *u.ImageURL
	}
	return set
}

// Apply overwrites p's fields with the non-nil fields of u.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.Size != nil {
		p.Size = *u.Size
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
}
