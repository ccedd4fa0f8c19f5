package domain

import (
	"reflect"
	"testing"
)

func TestTeacherPatchMergesOnlySetFields(t *testing.T) {
	teacher := Teacher{
		Base:     Base{ID: "t1", CreatedAt: "2024-01-01T00:00:00.000Z"},
		Name:     "Prof. Silva",
		Email:    "silva@modelo.com",
		ClassIDs: []string{"c1"},
		Active:   true,
	}
	classes := []string{"c1", "c2"}
	TeacherPatch{Email: Ptr("novo@modelo.com"), ClassIDs: &classes, Active: Ptr(false)}.Apply(&teacher)

	if teacher.Name != "Prof. Silva" {
		t.Fatalf("unset field changed: %s", teacher.Name)
	}
	if teacher.Email != "novo@modelo.com" || teacher.Active {
		t.Fatalf("patch not applied: %+v", teacher)
	}
	if !reflect.DeepEqual(teacher.ClassIDs, []string{"c1", "c2"}) {
		t.Fatalf("class ids: %v", teacher.ClassIDs)
	}
	classes[0] = "mutated"
	if teacher.ClassIDs[0] != "c1" {
		t.Fatalf("class ids share backing array with patch")
	}
	if teacher.ID != "t1" || teacher.CreatedAt != "2024-01-01T00:00:00.000Z" {
		t.Fatalf("identity changed: %+v", teacher.Base)
	}
}

func TestPatchesApply(t *testing.T) {
	school := School{Name: "A", Inep: "1"}
	SchoolPatch{Name: Ptr("B")}.Apply(&school)
	if school.Name != "B" || school.Inep != "1" {
		t.Fatalf("school patch: %+v", school)
	}
	class := ClassRoom{Name: "1A", SchoolID: "s1"}
	ClassRoomPatch{SchoolID: Ptr("s2")}.Apply(&class)
	if class.SchoolID != "s2" || class.Name != "1A" {
		t.Fatalf("class patch: %+v", class)
	}
	role := JobRole{Name: "x"}
	JobRolePatch{Description: Ptr("d")}.Apply(&role)
	if role.Name != "x" || role.Description != "d" {
		t.Fatalf("role patch: %+v", role)
	}
	student := Student{Name: "Ana", Active: true}
	StudentPatch{Matricula: Ptr("9"), Active: Ptr(false)}.Apply(&student)
	if student.Matricula != "9" || student.Active || student.Name != "Ana" {
		t.Fatalf("student patch: %+v", student)
	}
}
