package i

import (
	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
)

// Authenticator registers players and signs them in.
type Authenticator interface {
	// Register creates a new player account from a username and plain
	// password.
	Register(username, password string) error

	// SignIn verifies the credentials and returns the player along with a
	// signed access token.
	SignIn(username, password string) (*dmn.User, string, error)
}
