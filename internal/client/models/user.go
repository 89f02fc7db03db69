package models

// User is the authenticated account as returned by the auth endpoints
// and persisted locally between runs.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
