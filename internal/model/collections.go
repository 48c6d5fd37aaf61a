package model

// File names of the processed collections inside the output directory.
// The validation pipeline reads the same artifacts the transform writes.
const (
	ProductsFile = "products.json"
	UsersFile    = "users.json"
	ReviewsFile  = "reviews.json"
	SalesFile    = "sales.json"
)
