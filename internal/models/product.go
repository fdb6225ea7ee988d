package models

// ProductDoc es la entrada del catálogo en Mongo (colección products).
type ProductDoc struct {
	ProductID string `json:"productId" bson:"productId"`
	Name      string `json:"name" bson:"name"`
	ImageURL  string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear un producto (admin)
type ProductCreateRequest struct {
	ProductID string `json:"productId"` // obligatorio
	Name      string `json:"name"`      // obligatorio
	ImageURL  string `json:"imageUrl,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Payload para actualización parcial de producto
type ProductUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Category *string `json:"category,omitempty"`
}
