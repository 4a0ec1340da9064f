package entity

// UserLoginData is the identity carried in the bearer token. Account
// management lives in a separate service; this backend only needs to know
// who is talking.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
