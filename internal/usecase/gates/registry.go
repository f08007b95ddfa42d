package gates

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

// CloseOptions carries the parameters of a gate close transition
type CloseOptions struct {
	Reason    string
	ActorRole domain.ActorRole
	OpensAt   *time.Time
	// RequireAdminOverride locks the gate so only admin_compliance can
	// reopen it. Requesting the lock itself requires an authorized role.
	RequireAdminOverride bool
}

// Registry is the keyed OPEN/CLOSED state machine for gates.
//
// Gates are materialized lazily: reading an unseen id creates it with status
// OPEN and locked=false, so an unknown gate is never an error. All reads
// return copies; the transition operations are the only way to mutate a gate.
type Registry struct {
	mu    sync.Mutex
	gates map[string]*domain.Gate
	clock func() time.Time
}

// NewRegistry creates an empty gate registry
func NewRegistry() *Registry {
	return NewRegistryWithClock(time.Now)
}

// NewRegistryWithClock creates a registry with an injectable clock for tests
func NewRegistryWithClock(clock func() time.Time) *Registry {
	return &Registry{
		gates: make(map[string]*domain.Gate),
		clock: clock,
	}
}

// GetState returns the gate's current state, creating an OPEN gate if the
// id has not been seen before
func (r *Registry) GetState(id string) domain.Gate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyGate(r.ensure(id))
}

// Close transitions the gate to CLOSED, recording the reason and optional
// reopen time. When RequireAdminOverride is requested the actor must be
// allowed to force the lock, otherwise ErrPermissionDenied is returned and
// the gate is left untouched.
func (r *Registry) Close(id string, opts CloseOptions) (domain.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts.RequireAdminOverride && !opts.ActorRole.CanForceLock() {
		return domain.Gate{}, fmt.Errorf("role %q cannot close gate %q with admin override: %w",
			opts.ActorRole, id, domain.ErrPermissionDenied)
	}

	gate := r.ensure(id)
	gate.Status = domain.GateClosed
	gate.Reason = opts.Reason
	gate.OpensAt = copyTime(opts.OpensAt)
	gate.Locked = opts.RequireAdminOverride
	gate.UpdatedAt = r.clock()
	return copyGate(gate), nil
}

// Open transitions the gate to OPEN, clearing the reason, reopen time, and
// lock. Opening an already-open gate is a no-op. A locked gate can only be
// opened by a role with override authority.
func (r *Registry) Open(id string, role domain.ActorRole) (domain.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gate := r.ensure(id)
	if gate.Status == domain.GateOpen {
		return copyGate(gate), nil
	}
	if gate.Locked && !role.CanOverrideLock() {
		return domain.Gate{}, fmt.Errorf("role %q cannot open locked gate %q: %w",
			role, id, domain.ErrPermissionDenied)
	}

	gate.Status = domain.GateOpen
	gate.Reason = ""
	gate.OpensAt = nil
	gate.Locked = false
	gate.UpdatedAt = r.clock()
	return copyGate(gate), nil
}

// SetOpensAt adjusts the scheduled reopen time without changing status
func (r *Registry) SetOpensAt(id string, opensAt *time.Time) (domain.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gate := r.ensure(id)
	gate.OpensAt = copyTime(opensAt)
	gate.UpdatedAt = r.clock()
	return copyGate(gate), nil
}

// Snapshot returns a copy of every known gate, sorted by id
func (r *Registry) Snapshot() []domain.Gate {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Gate, 0, len(r.gates))
	for _, gate := range r.gates {
		out = append(out, copyGate(gate))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ensure must be called with the registry mutex held
func (r *Registry) ensure(id string) *domain.Gate {
	if gate, ok := r.gates[id]; ok {
		return gate
	}
	gate := &domain.Gate{
		ID:        id,
		Status:    domain.GateOpen,
		Locked:    false,
		UpdatedAt: r.clock(),
	}
	r.gates[id] = gate
	return gate
}

func copyGate(gate *domain.Gate) domain.Gate {
	out := *gate
	out.OpensAt = copyTime(gate.OpensAt)
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}
