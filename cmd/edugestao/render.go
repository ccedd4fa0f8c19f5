package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"edugestao/internal/core"
	"edugestao/pkg/domain"
)

func status(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// renderTable prints rows with references resolved to labels.
func renderTable(w io.Writer, snap core.Snapshot, rows any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	line := func(cols ...string) {
		_, _ = fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	switch items := rows.(type) {
	case []domain.School:
		line("ID", "NAME", "INEP", "ADDRESS", "PHONE", "EMAIL")
		for _, s := range items {
			line(s.ID, s.Name, s.Inep, s.Address, s.Phone, s.Email)
		}
	case []domain.ClassRoom:
		line("ID", "NAME", "GRADE", "SCHOOL", "TEACHERS", "STUDENTS")
		for _, c := range items {
			line(c.ID, c.Name, c.Grade, domain.SchoolName(snap.Schools, c.SchoolID),
				strconv.Itoa(len(domain.TeachersInClass(snap.Teachers, c.ID))),
				strconv.Itoa(len(domain.StudentsInClass(snap.Students, c.ID))))
		}
	case []domain.Teacher:
		line("ID", "NAME", "ROLE", "SCHOOL", "CLASSES", "STATUS")
		for _, t := range items {
			line(t.ID, t.Name, domain.RoleName(snap.Roles, t.RoleID), domain.SchoolName(snap.Schools, t.SchoolID),
				strings.Join(domain.ClassNames(snap.Classes, t.ClassIDs), ", "), status(t.Active))
		}
	case []domain.Student:
		line("ID", "NAME", "MATRICULA", "CLASS", "SCHOOL", "STATUS")
		for _, s := range items {
			line(s.ID, s.Name, s.Matricula, domain.ClassLabel(snap.Classes, s.ClassID),
				domain.SchoolName(snap.Schools, s.SchoolID), status(s.Active))
		}
	case []domain.JobRole:
		line("ID", "NAME", "DESCRIPTION")
		for _, r := range items {
			line(r.ID, r.Name, r.Description)
		}
	default:
		return fmt.Errorf("cannot render %T", rows)
	}
	return tw.Flush()
}

func renderStats(w io.Writer, st domain.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"schools", strconv.Itoa(st.TotalSchools)},
		{"classes", strconv.Itoa(st.TotalClasses)},
		{"teachers", fmt.Sprintf("%d (%d active)", st.TotalTeachers, st.ActiveTeachers)},
		{"students", fmt.Sprintf("%d (%d active)", st.TotalStudents, st.ActiveStudents)},
		{"roles", strconv.Itoa(st.TotalRoles)},
		{"school names", strings.Join(st.SchoolNames, ", ")},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
