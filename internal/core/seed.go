package core

import (
	"context"
	"encoding/json"
	"fmt"

	"edugestao/pkg/domain"
)

// Bootstrap seeds one linked record of each kind when the school slot is
// absent. It reports whether seeding happened. An existing school slot, even
// an empty one, disables seeding.
func (s *Store) Bootstrap(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists, err := s.kv.Get(ctx, SlotSchools)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", SlotSchools, err)
	}
	if exists {
		return false, nil
	}

	stamp := func(b *domain.Base) {
		b.Stamp(s.idFn(), FormatTime(s.nowFn()))
	}

	school := domain.School{
		Name:    "Escola Modelo Central",
		Inep:    "12345678",
		Address: "Av. Paulista, 1000",
		Phone:   "1199999999",
		Email:   "contato@modelo.com",
	}
	stamp(&school.Base)

	role := domain.JobRole{Name: "Professor Regente", Description: "Docência em sala de aula"}
	stamp(&role.Base)

	class := domain.ClassRoom{Name: "1º Ano A", Grade: "1º Ano", SchoolID: school.ID}
	stamp(&class.Base)

	teacher := domain.Teacher{
		Name:          "Prof. Silva",
		Email:         "silva@modelo.com",
		Specialty:     "Matemática",
		RoleID:        role.ID,
		SchoolID:      school.ID,
		AdmissionDate: "2020-02-01",
		Contest:       "Edital 01/2019",
		ClassIDs:      []string{class.ID},
		Active:        true,
	}
	stamp(&teacher.Base)

	student := domain.Student{
		Name:         "Joãozinho da Silva",
		Cpf:          "123.456.789-00",
		BirthDate:    "2015-05-10",
		GuardianName: "Maria Silva",
		Matricula:    "2024001",
		ClassID:      class.ID,
		SchoolID:     school.ID,
		Active:       true,
	}
	stamp(&student.Base)

	writes := []struct {
		slot  string
		value any
	}{
		{SlotSchools, []domain.School{school}},
		{SlotRoles, []domain.JobRole{role}},
		{SlotClasses, []domain.ClassRoom{class}},
		{SlotTeachers, []domain.Teacher{teacher}},
		{SlotStudents, []domain.Student{student}},
	}
	for _, w := range writes {
		data, err := json.Marshal(w.value)
		if err != nil {
			return false, fmt.Errorf("encode %s: %w", w.slot, err)
		}
		if err := s.kv.Put(ctx, w.slot, data); err != nil {
			return false, fmt.Errorf("write %s: %w", w.slot, err)
		}
	}
	s.log.Info().Str("school_id", school.ID).Str("driver", string(s.kv.Driver())).Msg("seeded initial records")
	return true, nil
}
