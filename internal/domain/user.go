package domain

// User is a snapshot of a record owned by the user directory.
// It is never stored locally.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
