package dto

// TeamMember is an entry of the about page
type TeamMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
