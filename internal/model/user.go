package model

// User is one document of the users collection, keyed by UserID. Users are
// extracted from the comma-joined reviewer lists embedded in product rows;
// email, review count and average rating are synthetic.
type User struct {
	UserID             string  `json:"user_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	RegistrationDate   string  `json:"registration_date"`
	TotalReviews       int     `json:"total_reviews"`
	AverageRatingGiven float64 `json:"average_rating_given"`
}
