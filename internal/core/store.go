// Package core implements the entity store: typed collections of schools,
// classes, teachers, students and job roles persisted as JSON arrays in named
// slots of a kv.Store.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"edugestao/internal/kv"
	"edugestao/pkg/domain"
)

// Slot names, one per entity kind.
const (
	SlotSchools  = "edugestao_schools"
	SlotClasses  = "edugestao_classes"
	SlotTeachers = "edugestao_teachers"
	SlotStudents = "edugestao_students"
	SlotRoles    = "edugestao_roles"
)

var slots = map[domain.EntityType]string{
	domain.EntitySchool:  SlotSchools,
	domain.EntityClass:   SlotClasses,
	domain.EntityTeacher: SlotTeachers,
	domain.EntityStudent: SlotStudents,
	domain.EntityRole:    SlotRoles,
}

// SlotFor returns the slot holding records of kind.
func SlotFor(kind domain.EntityType) (string, error) {
	slot, ok := slots[kind]
	if !ok {
		return "", domain.ErrUnknownEntityType{Name: string(kind)}
	}
	return slot, nil
}

// Store exposes the five collections over a single slot backend. Every
// mutation reads the whole slot, changes it and writes it back while holding
// the store mutex.
type Store struct {
	kv      kv.Store
	mu      sync.Mutex
	log     zerolog.Logger
	metrics MetricsRecorder
	nowFn   func() time.Time
	idFn    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation and bootstrap events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.idFn = gen
		}
	}
}

// WithMetrics installs a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Store) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewStore constructs a Store on top of backend.
func NewStore(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:      backend,
		log:     zerolog.Nop(),
		metrics: noopMetrics{},
		nowFn:   time.Now,
		idFn:    NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) observe(ctx context.Context, kind domain.EntityType, op string, start time.Time, err error) {
	s.metrics.Observe(ctx, kind, op, err == nil, time.Since(start))
}

// Schools returns the school collection.
func (s *Store) Schools() Schools {
	return Schools{collection[domain.School, *domain.School]{store: s, kind: domain.EntitySchool}}
}

// Classes returns the classroom collection.
func (s *Store) Classes() Classes {
	return Classes{collection[domain.ClassRoom, *domain.ClassRoom]{store: s, kind: domain.EntityClass}}
}

// Roles returns the job role collection.
func (s *Store) Roles() Roles {
	return Roles{collection[domain.JobRole, *domain.JobRole]{store: s, kind: domain.EntityRole}}
}

// Teachers returns the teacher collection.
func (s *Store) Teachers() Teachers {
	return Teachers{collection[domain.Teacher, *domain.Teacher]{store: s, kind: domain.EntityTeacher}}
}

// Students returns the student collection.
func (s *Store) Students() Students {
	return Students{collection[domain.Student, *domain.Student]{store: s, kind: domain.EntityStudent}}
}

type stamper[T any] interface {
	*T
	Stamp(id, createdAt string)
	Created() string
}

// collection implements the read-all, mutate, write-all cycle shared by
// every kind.
type collection[T domain.Record, P stamper[T]] struct {
	store *Store
	kind  domain.EntityType
}

func (c collection[T, P]) load(ctx context.Context) ([]T, error) {
	slot := slots[c.kind]
	data, ok, err := c.store.kv.Get(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", slot, err)
	}
	items := make([]T, 0)
	if !ok || len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", slot, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c collection[T, P]) save(ctx context.Context, items []T) error {
	slot := slots[c.kind]
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := c.store.kv.Put(ctx, slot, data); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}

// List returns every record in insertion order. An absent slot is empty.
func (c collection[T, P]) List(ctx context.Context) (out []T, err error) {
	start := time.Now()
	defer func() { c.store.observe(ctx, c.kind, "list", start, err) }()
	return c.load(ctx)
}

// Add assigns a fresh id and creation time, appends the record and persists
// the collection.
func (c collection[T, P]) Add(ctx context.Context, item T) (T, error) {
	return c.add(ctx, item)
}

func (c collection[T, P]) add(ctx context.Context, item T) (_ T, err error) {
	start := time.Now()
	defer func() { c.store.observe(ctx, c.kind, "add", start, err) }()

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	P(&item).Stamp(c.store.idFn(), FormatTime(c.store.nowFn()))
	items = append(items, item)
	if err = c.save(ctx, items); err != nil {
		var zero T
		return zero, err
	}
	c.store.log.Debug().Str("kind", string(c.kind)).Str("id", item.Identity()).Str("op", "add").Msg("record added")
	return item, nil
}

// mutate applies fn to the record with id. A missing id leaves the slot
// untouched and returns nil.
func (c collection[T, P]) mutate(ctx context.Context, op, id string, fn func(*T)) (err error) {
	start := time.Now()
	defer func() { c.store.observe(ctx, c.kind, op, start, err) }()

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		c.store.log.Debug().Str("kind", string(c.kind)).Str("id", id).Str("op", op).Msg("record not found; skipped")
		return nil
	}
	createdAt := P(&items[idx]).Created()
	fn(&items[idx])
	P(&items[idx]).Stamp(id, createdAt)
	if err = c.save(ctx, items); err != nil {
		return err
	}
	c.store.log.Debug().Str("kind", string(c.kind)).Str("id", id).Str("op", op).Msg("record updated")
	return nil
}

// remove physically deletes the record with id. No dependent records are
// touched.
func (c collection[T, P]) remove(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { c.store.observe(ctx, c.kind, "delete", start, err) }()

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		c.store.log.Debug().Str("kind", string(c.kind)).Str("id", id).Str("op", "delete").Msg("record not found; skipped")
		return nil
	}
	items = append(items[:idx], items[idx+1:]...)
	if err = c.save(ctx, items); err != nil {
		return err
	}
	c.store.log.Debug().Str("kind", string(c.kind)).Str("id", id).Str("op", "delete").Msg("record deleted")
	return nil
}

func indexOf[T domain.Record](items []T, id string) int {
	for i, item := range items {
		if item.Identity() == id {
			return i
		}
	}
	return -1
}

// Schools is the school collection. Deletion is physical.
type Schools struct {
	collection[domain.School, *domain.School]
}

// Update merges patch into the school with id.
func (c Schools) Update(ctx context.Context, id string, patch domain.SchoolPatch) error {
	return c.mutate(ctx, "update", id, patch.Apply)
}

// Delete removes the school with id. Classes, teachers and students that
// reference it are left as they are.
func (c Schools) Delete(ctx context.Context, id string) error { return c.remove(ctx, id) }

// Classes is the classroom collection. Deletion is physical.
type Classes struct {
	collection[domain.ClassRoom, *domain.ClassRoom]
}

// Update merges patch into the class with id.
func (c Classes) Update(ctx context.Context, id string, patch domain.ClassRoomPatch) error {
	return c.mutate(ctx, "update", id, patch.Apply)
}

// Delete removes the class with id.
func (c Classes) Delete(ctx context.Context, id string) error { return c.remove(ctx, id) }

// Roles is the job role collection. Deletion is physical.
type Roles struct {
	collection[domain.JobRole, *domain.JobRole]
}

// Update merges patch into the role with id.
func (c Roles) Update(ctx context.Context, id string, patch domain.JobRolePatch) error {
	return c.mutate(ctx, "update", id, patch.Apply)
}

// Delete removes the role with id.
func (c Roles) Delete(ctx context.Context, id string) error { return c.remove(ctx, id) }

// Teachers is the teacher collection. Teachers are disabled, never removed.
type Teachers struct {
	collection[domain.Teacher, *domain.Teacher]
}

// Add creates an active teacher.
func (c Teachers) Add(ctx context.Context, t domain.Teacher) (domain.Teacher, error) {
	t.Active = true
	if t.ClassIDs == nil {
		t.ClassIDs = []string{}
	}
	return c.add(ctx, t)
}

// Update merges patch into the teacher with id.
func (c Teachers) Update(ctx context.Context, id string, patch domain.TeacherPatch) error {
	return c.mutate(ctx, "update", id, patch.Apply)
}

// ToggleActive flips the active flag of the teacher with id.
func (c Teachers) ToggleActive(ctx context.Context, id string) error {
	return c.mutate(ctx, "toggle", id, func(t *domain.Teacher) { t.Active = !t.Active })
}

// Students is the student collection. Students are disabled, never removed.
type Students struct {
	collection[domain.Student, *domain.Student]
}

// Add creates an active student.
func (c Students) Add(ctx context.Context, st domain.Student) (domain.Student, error) {
	st.Active = true
	return c.add(ctx, st)
}

// Update merges patch into the student with id.
func (c Students) Update(ctx context.Context, id string, patch domain.StudentPatch) error {
	return c.mutate(ctx, "update", id, patch.Apply)
}

// ToggleActive flips the active flag of the student with id.
func (c Students) ToggleActive(ctx context.Context, id string) error {
	return c.mutate(ctx, "toggle", id, func(st *domain.Student) { st.Active = !st.Active })
}
