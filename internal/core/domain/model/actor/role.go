package actor

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role identifies what an actor is allowed to do in the dispatch workflow.
// It is a closed enum: every capability query below is an exhaustive switch,
// so adding a role forces every call site to take a position on it.
//
// Master tiers are ordered by claiming rights:
// Master < PremiumMaster / SeniorMaster.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Admin manages the whole dispatch workflow: creating orders,
	// assigning masters, cancelling orders.
	Admin

	// Support holds the same dispatch capabilities as Admin.
	Support

	// Master is the base technician tier. Masters work only on orders
	// explicitly assigned to them and cannot claim from the pool.
	Master

	// PremiumMaster may claim unassigned orders flagged as premium.
	PremiumMaster

	// SeniorMaster may claim any unassigned order.
	SeniorMaster
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:       "unknown",
		Admin:         "admin",
		Support:       "support",
		Master:        "master",
		PremiumMaster: "premium_master",
		SeniorMaster:  "senior_master",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:         "admin",
		Support:       "support",
		Master:        "master",
		PremiumMaster: "premium_master",
		SeniorMaster:  "senior_master",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error for unknown strings.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is one of the defined roles.
// Unknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanManage reports whether the role may create orders, cancel them, and
// assign them to masters manually.
func (r Role) CanManage() bool {
	switch r {
	case Admin, Support:
		return true
	case Master, PremiumMaster, SeniorMaster, Unknown:
		return false
	}
	return false
}

// CanSelfClaim reports whether the role may claim an unassigned order for
// itself. Base-tier masters act only on orders already assigned to them, so
// self-claim is reserved for the senior and premium tiers; premium claiming
// is further restricted to premium orders by the assignment resolver.
func (r Role) CanSelfClaim() bool {
	switch r {
	case PremiumMaster, SeniorMaster:
		return true
	case Admin, Support, Master, Unknown:
		return false
	}
	return false
}

// IsMasterTier reports whether the role identifies a technician who can be
// the assigned worker of an order.
func (r Role) IsMasterTier() bool {
	switch r {
	case Master, PremiumMaster, SeniorMaster:
		return true
	case Admin, Support, Unknown:
		return false
	}
	return false
}
