package domain

import "fmt"

// Fallback labels returned when a reference does not resolve. References are
// not checked on write, so dangling ids are an expected input here.
const (
	UnknownSchool   = "Unknown school"
	UnknownRole     = "Unknown role"
	UnassignedClass = "Unassigned"
)

// Find returns the record with the given id.
func Find[T Record](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Identity() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// SchoolName resolves a school id to its name.
func SchoolName(schools []School, id string) string {
	if s, ok := Find(schools, id); ok {
		return s.Name
	}
	return UnknownSchool
}

// RoleName resolves a job role id to its name.
func RoleName(roles []JobRole, id string) string {
	if r, ok := Find(roles, id); ok {
		return r.Name
	}
	return UnknownRole
}

// ClassLabel resolves a class id to "Name (Grade)".
func ClassLabel(classes []ClassRoom, id string) string {
	if c, ok := Find(classes, id); ok {
		return fmt.Sprintf("%s (%s)", c.Name, c.Grade)
	}
	return UnassignedClass
}

// ClassNames resolves a teacher's class list, skipping ids that no longer exist.
func ClassNames(classes []ClassRoom, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := Find(classes, id); ok {
			out = append(out, c.Name)
		}
	}
	return out
}

// TeachersInClass scans teachers for membership in classID.
func TeachersInClass(teachers []Teacher, classID string) []Teacher {
	out := make([]Teacher, 0)
	for _, t := range teachers {
		for _, id := range t.ClassIDs {
			if id == classID {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// StudentsInClass returns the students whose class reference is classID.
func StudentsInClass(students []Student, classID string) []Student {
	out := make([]Student, 0)
	for _, s := range students {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out
}
