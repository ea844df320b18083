package services

import (
	"fmt"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/errs"
)

// AccessPolicy is a domain service holding the pure authorization predicates
// that gate every per-order operation. It has no dependencies and no side
// effects; callers evaluate it inline before mutating or reading an order.
//
// Rules:
//   - An admin may access any order
//   - An owner may access their own orders
//   - Only an admin may approve or reject
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// IsAdmin reports whether the actor holds the admin role.
func (AccessPolicy) IsAdmin(actor kernel.Actor) bool {
	return actor.IsAdmin()
}

// IsOwner reports whether the actor owns the given order.
func (AccessPolicy) IsOwner(actor kernel.Actor, order *travelorder.TravelOrder) bool {
	return order != nil && order.OwnerID().IsEqual(actor.ID())
}

// CanAccess checks that the actor is the order's owner or an admin.
// Returns a ForbiddenError naming the attempted action otherwise. This check
// is mandatory before every read, update, cancel, or delete on a specific
// order.
func (p AccessPolicy) CanAccess(actor kernel.Actor, order *travelorder.TravelOrder, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if p.IsAdmin(actor) || p.IsOwner(actor, order) {
		return nil
	}

	return errs.NewForbiddenErrorWithCause(action,
		fmt.Errorf("actor %s is neither the owner nor an admin", actor.ID()))
}

// CanChangeStatus checks that the actor may approve or reject orders.
// Approval and rejection are admin-exclusive.
func (p AccessPolicy) CanChangeStatus(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if p.IsAdmin(actor) {
		return nil
	}

	return errs.NewForbiddenErrorWithCause("change travel order status",
		fmt.Errorf("actor %s is not an admin", actor.ID()))
}
