package domain

// User is the authenticated identity supplied by the outer auth layer.
// Equality is by Id, Name is display-only.
type User struct {
	Id    UserId `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin,omitempty"`
}
