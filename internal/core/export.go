package core

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"edugestao/pkg/domain"
)

// CSVContentType is the media type of export artifacts.
const CSVContentType = "text/csv; charset=utf-8"

var exportFilenames = map[domain.EntityType]string{
	domain.EntitySchool:  "escolas.csv",
	domain.EntityClass:   "turmas.csv",
	domain.EntityTeacher: "professores.csv",
	domain.EntityStudent: "alunos.csv",
	domain.EntityRole:    "funcoes.csv",
}

// Artifact is a rendered export ready to be written somewhere.
type Artifact struct {
	Kind        domain.EntityType
	Filename    string
	ContentType string
	Payload     []byte
	Rows        int
}

// Export renders the collection of kind as CSV. When the collection is empty
// it returns ok=false and no artifact.
func (s *Store) Export(ctx context.Context, kind domain.EntityType) (_ Artifact, ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, kind, "export", start, err) }()

	var records []any
	switch kind {
	case domain.EntitySchool:
		records, err = asAny(s.Schools().load(ctx))
	case domain.EntityClass:
		records, err = asAny(s.Classes().load(ctx))
	case domain.EntityTeacher:
		records, err = asAny(s.Teachers().load(ctx))
	case domain.EntityStudent:
		records, err = asAny(s.Students().load(ctx))
	case domain.EntityRole:
		records, err = asAny(s.Roles().load(ctx))
	default:
		return Artifact{}, false, domain.ErrUnknownEntityType{Name: string(kind)}
	}
	if err != nil {
		return Artifact{}, false, err
	}
	if len(records) == 0 {
		return Artifact{}, false, nil
	}
	return Artifact{
		Kind:        kind,
		Filename:    exportFilenames[kind],
		ContentType: CSVContentType,
		Payload:     []byte(renderCSV(records)),
		Rows:        len(records),
	}, true, nil
}

func asAny[T any](items []T, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out, nil
}

// renderCSV writes a header of JSON field names followed by one line per
// record. Strings are always quoted, slices collapse to "[N items]" and
// booleans are bare. encoding/csv only quotes when needed, so lines are
// built by hand.
func renderCSV(records []any) string {
	columns := exportColumns(reflect.TypeOf(records[0]))
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.name)
	}
	for _, rec := range records {
		b.WriteByte('\n')
		v := reflect.ValueOf(rec)
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatCell(v.FieldByIndex(col.index)))
		}
	}
	return b.String()
}

type exportColumn struct {
	name  string
	index []int
}

// exportColumns flattens embedded structs in declaration order.
func exportColumns(t reflect.Type) []exportColumn {
	var out []exportColumn
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for _, inner := range exportColumns(f.Type) {
				inner.index = append([]int{i}, inner.index...)
				out = append(out, inner)
			}
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out = append(out, exportColumn{name: name, index: []int{i}})
	}
	return out
}

func formatCell(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return `"` + strings.ReplaceAll(v.String(), `"`, `""`) + `"`
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf(`"[%d items]"`, v.Len())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprint(v.Interface())
	}
}
