// Package session implements the login gate. It checks that the form is
// complete and labels the session with the chosen school. No credential is
// verified.
package session

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	govalidator "github.com/go-playground/validator/v10"

	"edugestao/pkg/domain"
)

// Credentials is the login form.
type Credentials struct {
	Username string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	SchoolID string `json:"schoolId" validate:"required"`
}

// Session identifies the logged-in user and the school they work in.
type Session struct {
	Username   string
	SchoolID   string
	SchoolName string
}

// SchoolLister lists the schools offered on the login form.
type SchoolLister interface {
	List(ctx context.Context) ([]domain.School, error)
}

// ErrIncomplete lists the form fields that were left empty.
type ErrIncomplete struct {
	Fields []string
}

func (e ErrIncomplete) Error() string {
	return fmt.Sprintf("all fields are required: missing %s", strings.Join(e.Fields, ", "))
}

var validate = newValidator()

func newValidator() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Login validates creds and resolves the school label. A school id that no
// longer exists still logs in, labelled with domain.UnknownSchool.
func Login(ctx context.Context, schools SchoolLister, creds Credentials) (Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	creds.SchoolID = strings.TrimSpace(creds.SchoolID)
	if err := validate.Struct(creds); err != nil {
		var ve govalidator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fe.Field())
			}
			sort.Strings(fields)
			return Session{}, ErrIncomplete{Fields: fields}
		}
		return Session{}, fmt.Errorf("validate credentials: %w", err)
	}
	list, err := schools.List(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("list schools: %w", err)
	}
	return Session{
		Username:   creds.Username,
		SchoolID:   creds.SchoolID,
		SchoolName: domain.SchoolName(list, creds.SchoolID),
	}, nil
}
