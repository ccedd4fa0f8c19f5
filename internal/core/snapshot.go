package core

import (
	"context"
	"errors"
	"fmt"

	"edugestao/pkg/domain"
)

// ErrLogicalDelete is returned when a physical delete is requested for a
// kind that is only ever disabled.
var ErrLogicalDelete = errors.New("kind is disabled through its active flag, not deleted")

// ErrNotToggleable is returned when an active toggle is requested for a kind
// without an active flag.
var ErrNotToggleable = errors.New("kind has no active flag")

// Snapshot holds every collection as read at one point in time.
type Snapshot struct {
	Schools  []domain.School    `json:"schools"`
	Classes  []domain.ClassRoom `json:"classes"`
	Teachers []domain.Teacher   `json:"teachers"`
	Students []domain.Student   `json:"students"`
	Roles    []domain.JobRole   `json:"roles"`
}

// Snapshot reads all five collections.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Schools, err = s.Schools().List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Classes, err = s.Classes().List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Teachers, err = s.Teachers().List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Students, err = s.Students().List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Roles, err = s.Roles().List(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Stats recomputes the aggregate counts from the current collections.
func (s *Store) Stats(ctx context.Context) (domain.Stats, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(snap.Schools, snap.Classes, snap.Teachers, snap.Students, snap.Roles), nil
}

// Delete physically removes a school, class or role by id.
func (s *Store) Delete(ctx context.Context, kind domain.EntityType, id string) error {
	switch kind {
	case domain.EntitySchool:
		return s.Schools().Delete(ctx, id)
	case domain.EntityClass:
		return s.Classes().Delete(ctx, id)
	case domain.EntityRole:
		return s.Roles().Delete(ctx, id)
	case domain.EntityTeacher, domain.EntityStudent:
		return fmt.Errorf("delete %s: %w", kind, ErrLogicalDelete)
	}
	return domain.ErrUnknownEntityType{Name: string(kind)}
}

// ToggleActive flips the active flag of a teacher or student by id.
func (s *Store) ToggleActive(ctx context.Context, kind domain.EntityType, id string) error {
	switch kind {
	case domain.EntityTeacher:
		return s.Teachers().ToggleActive(ctx, id)
	case domain.EntityStudent:
		return s.Students().ToggleActive(ctx, id)
	case domain.EntitySchool, domain.EntityClass, domain.EntityRole:
		return fmt.Errorf("toggle %s: %w", kind, ErrNotToggleable)
	}
	return domain.ErrUnknownEntityType{Name: string(kind)}
}
