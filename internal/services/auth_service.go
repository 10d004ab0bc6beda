package services

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookworm/internal/repos"
)

var ErrBadCreds = errors.New("invalid email or password")

// StubAuthenticator is the prototype's no-op backend: every call succeeds and
// nothing is checked or stored. It is the default wiring.
type StubAuthenticator struct{}

func (StubAuthenticator) Authenticate(email, password string) error { return nil }
func (StubAuthenticator) Register(name, email, password string) error { return nil }
func (StubAuthenticator) ResetPassword(email string) error { return nil }

// LocalAuthenticator checks bcrypt hashes against the local users table. It
// satisfies the same interface as the stub, so swapping it in touches no call
// sites.
type LocalAuthenticator struct {
	Users *repos.UserRepo
}

func (a *LocalAuthenticator) Authenticate(email, password string) error {
	u, err := a.Users.ByEmail(email)
	if err != nil {
		return ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return ErrBadCreds
	}
	return nil
}

func (a *LocalAuthenticator) Register(name, email, password string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	return a.Users.Create(uuid.NewString(), email, name, string(h))
}

// ResetPassword is accepted but not acted on; there is no mail delivery in
// this scope.
func (a *LocalAuthenticator) ResetPassword(email string) error {
	if _, err := a.Users.ByEmail(email); err != nil {
		return ErrBadCreds
	}
	return nil
}
