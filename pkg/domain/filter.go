package domain

import "strings"

// Filter narrows a listing. Query is matched case-insensitively as a
// substring of each kind's primary fields; the remaining fields are stricter
// secondary filters compared for equality. All set fields must match; empty
// fields always match.
type Filter struct {
	Query    string
	SchoolID string
	ClassID  string
	Active   *bool
}

// ContainsFold reports whether term occurs in any of fields, ignoring case.
// An empty term matches everything.
func ContainsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// EqualFoldOrEmpty is the secondary predicate: an empty want matches.
func EqualFoldOrEmpty(want, field string) bool {
	return want == "" || strings.EqualFold(want, field)
}

func activeMatches(want *bool, active bool) bool {
	return want == nil || *want == active
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// FilterSchools matches Query against name, registry code and id.
func FilterSchools(items []School, f Filter) []School {
	return keep(items, func(s School) bool {
		return ContainsFold(f.Query, s.Name, s.Inep, s.ID) && EqualFoldOrEmpty(f.SchoolID, s.ID)
	})
}

// FilterClasses matches Query against name and grade.
func FilterClasses(items []ClassRoom, f Filter) []ClassRoom {
	return keep(items, func(c ClassRoom) bool {
		return ContainsFold(f.Query, c.Name, c.Grade) &&
			EqualFoldOrEmpty(f.SchoolID, c.SchoolID) &&
			EqualFoldOrEmpty(f.ClassID, c.ID)
	})
}

// FilterRoles matches Query against name.
func FilterRoles(items []JobRole, f Filter) []JobRole {
	return keep(items, func(r JobRole) bool {
		return ContainsFold(f.Query, r.Name)
	})
}

// FilterTeachers matches Query against name.
func FilterTeachers(items []Teacher, f Filter) []Teacher {
	return keep(items, func(t Teacher) bool {
		if !ContainsFold(f.Query, t.Name) || !EqualFoldOrEmpty(f.SchoolID, t.SchoolID) || !activeMatches(f.Active, t.Active) {
			return false
		}
		if f.ClassID == "" {
			return true
		}
		for _, id := range t.ClassIDs {
			if strings.EqualFold(id, f.ClassID) {
				return true
			}
		}
		return false
	})
}

// FilterStudents matches Query against name and enrollment number.
func FilterStudents(items []Student, f Filter) []Student {
	return keep(items, func(s Student) bool {
		return ContainsFold(f.Query, s.Name, s.Matricula) &&
			EqualFoldOrEmpty(f.SchoolID, s.SchoolID) &&
			EqualFoldOrEmpty(f.ClassID, s.ClassID) &&
			activeMatches(f.Active, s.Active)
	})
}
