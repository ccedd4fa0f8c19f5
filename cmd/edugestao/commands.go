package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"edugestao/internal/report"
	"edugestao/internal/session"
	"edugestao/pkg/domain"
)

func runSeed(ctx context.Context, a *app, args []string) error {
	if len(args) != 0 {
		return usageErr("seed takes no arguments")
	}
	seeded, err := a.store.Bootstrap(ctx)
	if err != nil {
		return err
	}
	if seeded {
		_, err = fmt.Fprintln(a.stdout, "seeded initial records")
	} else {
		_, err = fmt.Fprintln(a.stdout, "registry already initialised")
	}
	return err
}

func runList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("list")
	query := fs.String("q", "", "free text search")
	school := fs.String("school", "", "school id")
	class := fs.String("class", "", "class id")
	active := fs.String("active", "", "yes or no")
	asJSON := fs.Bool("json", false, "print JSON")
	rest, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return usageErr("list needs exactly one kind")
	}
	kind, err := domain.ParseEntityType(rest[0])
	if err != nil {
		return err
	}
	filter := domain.Filter{Query: *query, SchoolID: *school, ClassID: *class}
	if *active != "" {
		v, err := parseYesNo(*active)
		if err != nil {
			return err
		}
		filter.Active = &v
	}

	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	var rows any
	switch kind {
	case domain.EntitySchool:
		rows = domain.FilterSchools(snap.Schools, filter)
	case domain.EntityClass:
		rows = domain.FilterClasses(snap.Classes, filter)
	case domain.EntityTeacher:
		rows = domain.FilterTeachers(snap.Teachers, filter)
	case domain.EntityStudent:
		rows = domain.FilterStudents(snap.Students, filter)
	case domain.EntityRole:
		rows = domain.FilterRoles(snap.Roles, filter)
	}
	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return renderTable(a.stdout, snap, rows)
}

func runAdd(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return usageErr("add needs a kind")
	}
	kind, err := domain.ParseEntityType(args[0])
	if err != nil {
		return err
	}
	fields, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	var id string
	switch kind {
	case domain.EntitySchool:
		id, err = addDecoded(ctx, fields, a.store.Schools().Add)
	case domain.EntityClass:
		id, err = addDecoded(ctx, fields, a.store.Classes().Add)
	case domain.EntityTeacher:
		id, err = addDecoded(ctx, fields, a.store.Teachers().Add)
	case domain.EntityStudent:
		id, err = addDecoded(ctx, fields, a.store.Students().Add)
	case domain.EntityRole:
		id, err = addDecoded(ctx, fields, a.store.Roles().Add)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, id)
	return err
}

func addDecoded[T domain.Record](ctx context.Context, fields map[string]any, add func(context.Context, T) (T, error)) (string, error) {
	item, err := decodeFields[T](fields)
	if err != nil {
		return "", err
	}
	created, err := add(ctx, item)
	if err != nil {
		return "", err
	}
	return created.Identity(), nil
}

func runUpdate(ctx context.Context, a *app, args []string) error {
	if len(args) < 2 {
		return usageErr("update needs a kind and an id")
	}
	kind, err := domain.ParseEntityType(args[0])
	if err != nil {
		return err
	}
	id := args[1]
	fields, err := parseAssignments(args[2:])
	if err != nil {
		return err
	}
	switch kind {
	case domain.EntitySchool:
		return updateDecoded(ctx, id, fields, a.store.Schools().Update)
	case domain.EntityClass:
		return updateDecoded(ctx, id, fields, a.store.Classes().Update)
	case domain.EntityTeacher:
		return updateDecoded(ctx, id, fields, a.store.Teachers().Update)
	case domain.EntityStudent:
		return updateDecoded(ctx, id, fields, a.store.Students().Update)
	case domain.EntityRole:
		return updateDecoded(ctx, id, fields, a.store.Roles().Update)
	}
	return nil
}

func updateDecoded[P any](ctx context.Context, id string, fields map[string]any, update func(context.Context, string, P) error) error {
	patch, err := decodeFields[P](fields)
	if err != nil {
		return err
	}
	return update(ctx, id, patch)
}

func runDelete(ctx context.Context, a *app, args []string) error {
	kind, id, err := kindAndID("delete", args)
	if err != nil {
		return err
	}
	return a.store.Delete(ctx, kind, id)
}

func runToggle(ctx context.Context, a *app, args []string) error {
	kind, id, err := kindAndID("toggle", args)
	if err != nil {
		return err
	}
	return a.store.ToggleActive(ctx, kind, id)
}

func runExport(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("export")
	dir := fs.String("dir", a.cfg.ExportDir, "output directory")
	rest, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return usageErr("export needs exactly one kind")
	}
	kind, err := domain.ParseEntityType(rest[0])
	if err != nil {
		return err
	}
	art, ok, err := a.store.Export(ctx, kind)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintf(a.stdout, "no %s records to export\n", kind)
		return err
	}
	if err := os.MkdirAll(*dir, 0o750); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(*dir, art.Filename)
	if err := os.WriteFile(path, art.Payload, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	a.log.Info().Str("kind", string(kind)).Int("rows", art.Rows).Str("path", path).Msg("exported")
	_, err = fmt.Fprintln(a.stdout, path)
	return err
}

func runStats(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("stats")
	asJSON := fs.Bool("json", false, "print JSON")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}
	stats, err := a.store.Stats(ctx)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	return renderStats(a.stdout, stats)
}

func runReport(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("report")
	promptOnly := fs.Bool("prompt", false, "print the prompt instead of calling the generator")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}
	stats, err := a.store.Stats(ctx)
	if err != nil {
		return err
	}
	if *promptOnly {
		prompt, err := report.Prompt(stats)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(a.stdout, prompt)
		return err
	}
	// No generator client is linked into this binary.
	text := report.New(nil, a.cfg.AIAPIKey, a.log).Generate(ctx, stats)
	_, err = fmt.Fprintln(a.stdout, text)
	return err
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login")
	var creds session.Credentials
	fs.StringVar(&creds.Username, "user", "", "login name")
	fs.StringVar(&creds.Password, "password", "", "password")
	fs.StringVar(&creds.SchoolID, "school", "", "school id")
	rest, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return usageErr("login takes flags only")
	}
	sess, err := session.Login(ctx, a.store.Schools(), creds)
	if err != nil {
		var incomplete session.ErrIncomplete
		if errors.As(err, &incomplete) {
			return usageErr("%v", incomplete)
		}
		return err
	}
	a.log.Info().Str("user", sess.Username).Str("school_id", sess.SchoolID).Msg("session opened")
	_, err = fmt.Fprintf(a.stdout, "%s @ %s\n", sess.Username, sess.SchoolName)
	return err
}

func kindAndID(name string, args []string) (domain.EntityType, string, error) {
	if len(args) != 2 {
		return "", "", usageErr("%s needs a kind and an id", name)
	}
	kind, err := domain.ParseEntityType(args[0])
	if err != nil {
		return "", "", err
	}
	return kind, args[1], nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "active":
		return true, nil
	case "no", "n", "false", "inactive":
		return false, nil
	}
	return false, usageErr("expected yes or no, got %q", s)
}

// parseAssignments reads field=value pairs. classIds takes a comma separated
// list and active a yes/no value; everything else is a string.
func parseAssignments(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, usageErr("expected field=value, got %q", arg)
		}
		switch key {
		case "classIds":
			ids := []string{}
			for _, id := range strings.Split(value, ",") {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}
			fields[key] = ids
		case "active":
			v, err := parseYesNo(value)
			if err != nil {
				return nil, err
			}
			fields[key] = v
		default:
			fields[key] = value
		}
	}
	return fields, nil
}

// decodeFields maps assignments onto T through its JSON field names and
// rejects names T does not have.
func decodeFields[T any](fields map[string]any) (T, error) {
	var out T
	data, err := json.Marshal(fields)
	if err != nil {
		return out, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, usageErr("%v", err)
	}
	return out, nil
}
