package models

// UserDoc es una cuenta de la API (colección users). UserID es el mismo
// id string que aparece en las interacciones del dataset, así el token
// JWT alcanza para pedir /me/recommendations contra el modelo.
type UserDoc struct {
	UserID       string `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string `json:"updatedAt" bson:"updatedAt"`
}
