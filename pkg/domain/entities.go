// Package domain defines the persistent entities of the school registry,
// their typed patches, and the pure helpers (lookups, filters, statistics)
// that operate on collections of them.
package domain

import (
	"fmt"
	"strings"
)

// EntityType identifies the kind of record stored in a collection.
type EntityType string

// Supported entity types; each maps to one persisted slot.
const (
	EntitySchool  EntityType = "school"
	EntityClass   EntityType = "class"
	EntityTeacher EntityType = "teacher"
	EntityStudent EntityType = "student"
	EntityRole    EntityType = "role"
)

// EntityTypes lists every kind in slot order.
var EntityTypes = []EntityType{EntitySchool, EntityClass, EntityTeacher, EntityStudent, EntityRole}

// ErrUnknownEntityType is returned when a kind name cannot be resolved.
type ErrUnknownEntityType struct {
	Name string
}

func (e ErrUnknownEntityType) Error() string {
	return fmt.Sprintf("unknown entity type %q", e.Name)
}

// ParseEntityType resolves a kind from its name. Plural forms are accepted.
func ParseEntityType(name string) (EntityType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "school", "schools":
		return EntitySchool, nil
	case "class", "classes", "classroom", "classrooms":
		return EntityClass, nil
	case "teacher", "teachers":
		return EntityTeacher, nil
	case "student", "students":
		return EntityStudent, nil
	case "role", "roles", "jobrole", "jobroles":
		return EntityRole, nil
	}
	return "", ErrUnknownEntityType{Name: name}
}

// SoftDeleted reports whether records of this kind are disabled through the
// active flag instead of being removed.
func (t EntityType) SoftDeleted() bool {
	return t == EntityTeacher || t == EntityStudent
}

// Record is implemented by every entity through the embedded Base.
type Record interface {
	Identity() string
}

// Base contains the immutable fields shared by all records.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// Identity returns the record id.
func (b Base) Identity() string { return b.ID }

// Created returns the creation timestamp.
func (b Base) Created() string { return b.CreatedAt }

// Stamp assigns identity and creation time. Only the store calls it, once, on add.
func (b *Base) Stamp(id, createdAt string) {
	b.ID = id
	b.CreatedAt = createdAt
}

// School is an institution. Inep holds the national school registry code.
type School struct {
	Base
	Name    string `json:"name"`
	Inep    string `json:"inep"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ClassRoom belongs to one school.
type ClassRoom struct {
	Base
	Name     string `json:"name"`
	Grade    string `json:"grade"`
	SchoolID string `json:"schoolId"`
}

// JobRole describes a staff function assigned to teachers.
type JobRole struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Teacher is linked to a role, a primary school and any number of classes.
// ClassIDs is the only record of teacher/class membership.
type Teacher struct {
	Base
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Specialty     string   `json:"specialty"`
	RoleID        string   `json:"roleId"`
	SchoolID      string   `json:"schoolId"`
	AdmissionDate string   `json:"admissionDate"`
	Contest       string   `json:"contest"`
	ClassIDs      []string `json:"classIds"`
	Active        bool     `json:"active"`
}

// Student is enrolled in one class of one school. Cpf is the national id and
// Matricula the enrollment number.
type Student struct {
	Base
	Name         string `json:"name"`
	Cpf          string `json:"cpf"`
	BirthDate    string `json:"birthDate"`
	GuardianName string `json:"guardianName"`
	Matricula    string `json:"matricula"`
	ClassID      string `json:"classId"`
	SchoolID     string `json:"schoolId"`
	Active       bool   `json:"active"`
}
