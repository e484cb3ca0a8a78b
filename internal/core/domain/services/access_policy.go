package services

// Capability is a closed enumeration of the privileged actions the logistics
// engine gates. Capabilities are computed once per request from the caller's
// role and the company's subscription plan, never re-derived ad hoc.
type Capability int

const (
	// CapDispatchBatch allows confirming a batch departure.
	CapDispatchBatch Capability = iota + 1

	// CapCloseBatch allows closing a departed batch.
	CapCloseBatch

	// CapActivateSession allows activating a pending cash session.
	CapActivateSession

	// CapValidateSession allows reconciling a closed cash session.
	CapValidateSession

	// CapProcessClaim allows moving lost shipments through the claim states.
	CapProcessClaim
)

// Role is the caller's role as resolved by the identity collaborator.
// The engine never resolves roles itself; it only checks membership.
type Role string

const (
	RoleAgent        Role = "agent"
	RoleAgencyChief  Role = "chefAgence"
	RoleAccountant   Role = "comptable"
	RoleCompanyAdmin Role = "admin_compagnie"
)

// Plan is the company's subscription plan. Plans gate optional modules; the
// claim workflow is only part of the full plan.
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanFull  Plan = "full"
)

// CapabilitySet is an immutable set of capabilities.
type CapabilitySet map[Capability]struct{}

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// CapabilitiesFor is the pure role x plan mapping. Batch departure and
// closure are restricted to agency chiefs and company admins; session
// activation and validation to accountants and company admins; claim
// processing additionally requires the full plan.
func CapabilitiesFor(role Role, plan Plan) CapabilitySet {
	caps := CapabilitySet{}

	switch role {
	case RoleAgencyChief:
		caps[CapDispatchBatch] = struct{}{}
		caps[CapCloseBatch] = struct{}{}
	case RoleAccountant:
		caps[CapActivateSession] = struct{}{}
		caps[CapValidateSession] = struct{}{}
	case RoleCompanyAdmin:
		caps[CapDispatchBatch] = struct{}{}
		caps[CapCloseBatch] = struct{}{}
		caps[CapActivateSession] = struct{}{}
		caps[CapValidateSession] = struct{}{}
		caps[CapProcessClaim] = struct{}{}
	case RoleAgent:
		// agents hold no privileged capabilities
	}

	if role == RoleAgencyChief && plan == PlanFull {
		caps[CapProcessClaim] = struct{}{}
	}
	if plan != PlanFull {
		delete(caps, CapProcessClaim)
	}

	return caps
}
