// Package access implements capability-based authorization for content
// operations. Capabilities are a closed enumeration checked through a Policy,
// not free-form permission strings.
package access

import "github.com/1234-ad/intelligent-content-orchestrator/internal/domain"

// Capability identifies an operation an actor may be granted.
type Capability int

const (
	// CapCreate allows creating content.
	CapCreate Capability = iota
	// CapUpdateAny allows updating content owned by another author.
	CapUpdateAny
	// CapDeleteAny allows deleting content owned by another author.
	CapDeleteAny
	// CapPublishAny allows publishing content owned by another author.
	CapPublishAny
)

// Policy decides whether an actor holds a capability.
type Policy interface {
	Allows(actor domain.Actor, cap Capability) bool
}

// RolePolicy grants capabilities by role. Admin and moderator hold the
// cross-author capabilities; the user role may only create. Empty or unknown
// roles hold nothing.
type RolePolicy struct {
	grants map[string]map[Capability]struct{}
}

// NewRolePolicy builds the default role policy.
func NewRolePolicy() *RolePolicy {
	all := map[Capability]struct{}{
		CapCreate:     {},
		CapUpdateAny:  {},
		CapDeleteAny:  {},
		CapPublishAny: {},
	}
	return &RolePolicy{
		grants: map[string]map[Capability]struct{}{
			"admin":     all,
			"moderator": all,
			"user": {
				CapCreate: {},
			},
		},
	}
}

// Allows reports whether the actor's role grants the capability.
func (p *RolePolicy) Allows(actor domain.Actor, cap Capability) bool {
	caps, ok := p.grants[actor.Role]
	if !ok {
		return false
	}
	_, ok = caps[cap]
	return ok
}

// CanModify reports whether the actor may update or delete the given content:
// either they own it, or their role grants the cross-author capability.
func CanModify(p Policy, actor domain.Actor, ownerID string, cap Capability) bool {
	if actor.ID != "" && actor.ID == ownerID {
		return true
	}
	return p.Allows(actor, cap)
}
