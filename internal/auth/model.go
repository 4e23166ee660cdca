package auth

// User is the domain entity. Every account carries the USER role; there
// is no admin surface in this app.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
