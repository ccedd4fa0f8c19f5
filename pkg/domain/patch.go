package domain

// Patches carry optional field updates; a nil pointer leaves the field as is.
// None of them can address ID or CreatedAt.

// SchoolPatch updates a School.
type SchoolPatch struct {
	Name    *string `json:"name,omitempty"`
	Inep    *string `json:"inep,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// Apply merges the patch into s.
func (p SchoolPatch) Apply(s *School) {
	setString(&s.Name, p.Name)
	setString(&s.Inep, p.Inep)
	setString(&s.Address, p.Address)
	setString(&s.Phone, p.Phone)
	setString(&s.Email, p.Email)
}

// ClassRoomPatch updates a ClassRoom.
type ClassRoomPatch struct {
	Name     *string `json:"name,omitempty"`
	Grade    *string `json:"grade,omitempty"`
	SchoolID *string `json:"schoolId,omitempty"`
}

// Apply merges the patch into c.
func (p ClassRoomPatch) Apply(c *ClassRoom) {
	setString(&c.Name, p.Name)
	setString(&c.Grade, p.Grade)
	setString(&c.SchoolID, p.SchoolID)
}

// JobRolePatch updates a JobRole.
type JobRolePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply merges the patch into r.
func (p JobRolePatch) Apply(r *JobRole) {
	setString(&r.Name, p.Name)
	setString(&r.Description, p.Description)
}

// TeacherPatch updates a Teacher. ClassIDs replaces the whole membership list.
type TeacherPatch struct {
	Name          *string   `json:"name,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Specialty     *string   `json:"specialty,omitempty"`
	RoleID        *string   `json:"roleId,omitempty"`
	SchoolID      *string   `json:"schoolId,omitempty"`
	AdmissionDate *string   `json:"admissionDate,omitempty"`
	Contest       *string   `json:"contest,omitempty"`
	ClassIDs      *[]string `json:"classIds,omitempty"`
	Active        *bool     `json:"active,omitempty"`
}

// Apply merges the patch into t.
func (p TeacherPatch) Apply(t *Teacher) {
	setString(&t.Name, p.Name)
	setString(&t.Email, p.Email)
	setString(&t.Specialty, p.Specialty)
	setString(&t.RoleID, p.RoleID)
	setString(&t.SchoolID, p.SchoolID)
	setString(&t.AdmissionDate, p.AdmissionDate)
	setString(&t.Contest, p.Contest)
	if p.ClassIDs != nil {
		t.ClassIDs = append([]string{}, (*p.ClassIDs)...)
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
}

// StudentPatch updates a Student.
type StudentPatch struct {
	Name         *string `json:"name,omitempty"`
	Cpf          *string `json:"cpf,omitempty"`
	BirthDate    *string `json:"birthDate,omitempty"`
	GuardianName *string `json:"guardianName,omitempty"`
	Matricula    *string `json:"matricula,omitempty"`
	ClassID      *string `json:"classId,omitempty"`
	SchoolID     *string `json:"schoolId,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// Apply merges the patch into s.
func (p StudentPatch) Apply(s *Student) {
	setString(&s.Name, p.Name)
	setString(&s.Cpf, p.Cpf)
	setString(&s.BirthDate, p.BirthDate)
	setString(&s.GuardianName, p.GuardianName)
	setString(&s.Matricula, p.Matricula)
	setString(&s.ClassID, p.ClassID)
	setString(&s.SchoolID, p.SchoolID)
	if p.Active != nil {
		s.Active = *p.Active
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T { return &v }
