package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
	ErrPasswordIsRequired   = errs.NewValueIsRequiredError("password")
)

// passwordCost matches the cost used for the accounts created before the Go service.
const passwordCost = 12

// User is an account of the platform.
//
// Invariants:
//   - email is a syntactically valid address
//   - password is only kept as a bcrypt hash
//   - a changed email resets the verified flag
type User struct {
	id           kernel.ID
	email        string
	passwordHash string
	role         Role
	verified     bool

	isConstructed bool
}

// NewUser creates an unverified account and hashes the clear-text password.
func NewUser(email, password string, role Role) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(
		u.setEmail(email),
		u.setPassword(password),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role
	return u, nil
}

// RestoreUser rebuilds a persisted account without re-hashing the password.
func RestoreUser(id kernel.ID, email, passwordHash string, role Role, verified bool) (*User, error) {
	u := &User{isConstructed: true, passwordHash: passwordHash, verified: verified}
	if err := errors.Join(id.Validate(), u.setEmail(email), role.Validate()); err != nil {
		return nil, err
	}
	u.id = id
	u.role = role
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.ID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Verified() bool       { return u.verified }

// AssignID records the identity generated by storage. It can only happen once.
func (u *User) AssignID(id kernel.ID) error {
	if !u.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("user already has id %s", u.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// Actor returns the user as the party of a request.
func (u *User) Actor() (Actor, error) {
	return NewActor(u.id, u.role)
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// ChangeEmail updates the address and marks the account as unverified.
func (u *User) ChangeEmail(email string) error {
	if err := u.setEmail(email); err != nil {
		return err
	}
	u.verified = false
	return nil
}

// ChangePassword replaces the password hash.
func (u *User) ChangePassword(password string) error {
	return u.setPassword(password)
}

// Verify marks the email address as confirmed.
func (u *User) Verify() {
	u.verified = true
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	u.passwordHash = string(hash)
	return nil
}
