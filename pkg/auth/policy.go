package auth

import (
	"errors"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
)

type Capability int

const (
	// CapabilityOwnAccount covers reads and writes on the caller's own account.
	CapabilityOwnAccount Capability = iota
	CapabilityGrantCredits
	CapabilityManageRoles
	CapabilityListAccounts
)

func (c Capability) adminOnly() bool {
	switch c {
	case CapabilityGrantCredits, CapabilityManageRoles, CapabilityListAccounts:
		return true
	default:
		return false
	}
}

// Authorize decides from the verified token claims alone.
func Authorize(caller domain.Caller, capability Capability) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if capability.adminOnly() && !caller.Admin {
		return ErrPermissionDenied
	}
	return nil
}
