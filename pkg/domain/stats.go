package domain

// Stats is the read-only aggregate handed to the report generator.
type Stats struct {
	TotalSchools   int      `json:"totalSchools"`
	TotalClasses   int      `json:"totalClasses"`
	TotalTeachers  int      `json:"totalTeachers"`
	ActiveTeachers int      `json:"activeTeachers"`
	TotalStudents  int      `json:"totalStudents"`
	ActiveStudents int      `json:"activeStudents"`
	TotalRoles     int      `json:"totalRoles"`
	SchoolNames    []string `json:"schoolsList"`
}

// ComputeStats derives counts from full listings.
func ComputeStats(schools []School, classes []ClassRoom, teachers []Teacher, students []Student, roles []JobRole) Stats {
	st := Stats{
		TotalSchools:  len(schools),
		TotalClasses:  len(classes),
		TotalTeachers: len(teachers),
		TotalStudents: len(students),
		TotalRoles:    len(roles),
		SchoolNames:   make([]string, 0, len(schools)),
	}
	for _, t := range teachers {
		if t.Active {
			st.ActiveTeachers++
		}
	}
	for _, s := range students {
		if s.Active {
			st.ActiveStudents++
		}
	}
	for _, s := range schools {
		st.SchoolNames = append(st.SchoolNames, s.Name)
	}
	return st
}
