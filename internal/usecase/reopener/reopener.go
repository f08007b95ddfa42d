package reopener

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/harborpoint/moneygate-backend/internal/domain"
	"github.com/harborpoint/moneygate-backend/internal/usecase/gates"
)

// Reopener periodically reopens gates whose scheduled reopen time has
// passed. It only touches CLOSED, unlocked gates with a due OpensAt; locked
// gates wait for admin_compliance regardless of schedule. Reopening a gate
// never re-submits anything from the scheduled queue.
type Reopener struct {
	cron     *cron.Cron
	registry *gates.Registry
	audit    domain.AuditLog
	clock    func() time.Time
}

// ReopenReason is recorded on audit events written by scheduled reopens
const ReopenReason = "SCHEDULED_REOPEN"

// New creates a reopener over the given registry and audit trail
func New(registry *gates.Registry, audit domain.AuditLog) *Reopener {
	return &Reopener{
		cron:     cron.New(cron.WithSeconds()),
		registry: registry,
		audit:    audit,
		clock:    time.Now,
	}
}

// Register schedules the reopen sweep on the given cron spec
func (r *Reopener) Register(spec string) error {
	if _, err := r.cron.AddFunc(spec, func() {
		if err := r.RunOnce(context.Background(), r.clock()); err != nil {
			log.Printf("[ERROR] reopen sweep: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register reopen sweep: %w", err)
	}
	return nil
}

// Start starts the cron scheduler
func (r *Reopener) Start() {
	r.cron.Start()
	log.Println("[INFO] gate reopener started")
}

// Stop stops the cron scheduler gracefully
func (r *Reopener) Stop() {
	r.cron.Stop()
	log.Println("[INFO] gate reopener stopped")
}

// RunOnce performs a single sweep: every closed, unlocked gate whose OpensAt
// is at or before now is opened as the system role, with an audit record per
// reopened gate.
func (r *Reopener) RunOnce(ctx context.Context, now time.Time) error {
	for _, gate := range r.registry.Snapshot() {
		if gate.Status != domain.GateClosed || gate.Locked {
			continue
		}
		if gate.OpensAt == nil || gate.OpensAt.After(now) {
			continue
		}

		opened, err := r.registry.Open(gate.ID, domain.RoleSystem)
		if err != nil {
			return fmt.Errorf("open gate %q: %w", gate.ID, err)
		}
		log.Printf("[INFO] gate %s reopened on schedule", opened.ID)

		if _, err := r.audit.Record(ctx, domain.AuditEvent{
			Type:      domain.AuditTypeGateOpened,
			GateID:    gate.ID,
			ActorRole: domain.RoleSystem,
			Reason:    ReopenReason,
		}); err != nil {
			return fmt.Errorf("record reopen audit for gate %q: %w", gate.ID, err)
		}
	}
	return nil
}
