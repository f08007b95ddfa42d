package domain

import "time"

// GateStatus represents whether money may move through a gated entity
type GateStatus string

const (
	GateOpen   GateStatus = "OPEN"
	GateClosed GateStatus = "CLOSED"
)

// OrOpen returns the effective status, defaulting an unset value to OPEN
func (s GateStatus) OrOpen() GateStatus {
	if s == "" {
		return GateOpen
	}
	return s
}

// ActorRole is an already-resolved role string supplied by the caller.
// Role resolution against an identity provider happens outside this module.
type ActorRole string

const (
	RoleAdminCompliance ActorRole = "admin_compliance"
	RoleSystem          ActorRole = "system"
)

// CanForceLock reports whether the role may close a gate with the
// admin-override lock set
func (r ActorRole) CanForceLock() bool {
	return r == RoleAdminCompliance || r == RoleSystem
}

// CanOverrideLock reports whether the role may open a locked gate
func (r ActorRole) CanOverrideLock() bool {
	return r == RoleAdminCompliance
}

// GateReasonAnomalyHard is the reason recorded when the admission engine
// closes a gate after a HARD anomaly verdict
const GateReasonAnomalyHard = "ANOMALY_HARD"

// Gate represents the state of a named gate
type Gate struct {
	ID        string     `json:"id"`
	Status    GateStatus `json:"status"`
	Reason    string     `json:"reason,omitempty"`
	OpensAt   *time.Time `json:"opensAt,omitempty"`
	Locked    bool       `json:"locked"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
