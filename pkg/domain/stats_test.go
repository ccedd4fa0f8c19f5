package domain

import (
	"reflect"
	"testing"
)

func TestComputeStats(t *testing.T) {
	schools := []School{{Name: "A"}, {Name: "B"}}
	teachers := []Teacher{{Active: true}, {Active: false}, {Active: true}}
	students := []Student{{Active: false}}
	got := ComputeStats(schools, []ClassRoom{{}}, teachers, students, nil)
	want := Stats{
		TotalSchools: 2, TotalClasses: 1, TotalTeachers: 3, ActiveTeachers: 2,
		TotalStudents: 1, ActiveStudents: 0, TotalRoles: 0, SchoolNames: []string{"A", "B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	empty := ComputeStats(nil, nil, nil, nil, nil)
	if empty.SchoolNames == nil || len(empty.SchoolNames) != 0 {
		t.Fatalf("expected empty school list, got %#v", empty.SchoolNames)
	}
}
