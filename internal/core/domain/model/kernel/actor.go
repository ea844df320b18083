package kernel

import (
	"errors"

	"travelorders/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role classifies an actor for authorization purposes.
type Role string

const (
	// RoleUser is a regular requester. Users may create travel orders and
	// act on their own orders only.
	RoleUser Role = "user"

	// RoleAdmin is an administrator. Admins may act on any order and are
	// the only actors allowed to approve or reject.
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleAdmin {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// Actor is a value object identifying the authenticated caller of an
// operation. The surrounding HTTP layer resolves identity and role before
// the core is invoked; the core only consumes the resolved value.
//
// Actor is immutable. The zero value is invalid and must be constructed
// via NewActor.
type Actor struct {
	id    UUID
	name  string
	email string
	role  Role

	isConstructed bool
}

// NewActor creates an Actor with validation. The email may be empty when the
// caller's address is unknown; it is only consumed by the mail channel.
func NewActor(id UUID, name string, email string, role Role) (Actor, error) {
	if err := errors.Join(
		validateActorID(id),
		validateActorName(name),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		name:          name,
		email:         email,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor instance was properly constructed through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Name returns the actor's display name.
func (a Actor) Name() string {
	return a.name
}

// Email returns the actor's email address, possibly empty.
func (a Actor) Email() string {
	return a.email
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

func validateActorID(id UUID) error {
	return id.Validate()
}

func validateActorName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("actor name")
	}
	return nil
}
