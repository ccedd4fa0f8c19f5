package core

import (
	"context"
	"strings"
	"testing"

	"edugestao/pkg/domain"
)

func TestExportEmptyCollectionSkipped(t *testing.T) {
	store, _ := newTestStore(t)
	for _, kind := range domain.EntityTypes {
		art, ok, err := store.Export(context.Background(), kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if ok || art.Payload != nil {
			t.Fatalf("%s: expected no artifact for empty collection", kind)
		}
	}
}

func TestExportTeachers(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	if _, err := store.Teachers().Add(ctx, domain.Teacher{
		Name:     `Prof. "Zé" Silva`,
		Email:    "ze@modelo.com",
		ClassIDs: []string{"c1", "c2"},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	art, ok, err := store.Export(ctx, domain.EntityTeacher)
	if err != nil || !ok {
		t.Fatalf("expected artifact, got ok=%v err=%v", ok, err)
	}
	if art.Filename != "professores.csv" || art.ContentType != CSVContentType || art.Rows != 1 {
		t.Fatalf("unexpected artifact metadata %+v", art)
	}
	lines := strings.Split(string(art.Payload), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", art.Payload)
	}
	wantHeader := "id,createdAt,name,email,specialty,roleId,schoolId,admissionDate,contest,classIds,active"
	if lines[0] != wantHeader {
		t.Fatalf("header mismatch:\n got %s\nwant %s", lines[0], wantHeader)
	}
	wantRow := `"id0000001","2024-03-01T12:30:00.000Z","Prof. ""Zé"" Silva","ze@modelo.com","","","","","","[2 items]",true`
	if lines[1] != wantRow {
		t.Fatalf("row mismatch:\n got %s\nwant %s", lines[1], wantRow)
	}
}

func TestExportFilenames(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	if _, err := store.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	want := map[domain.EntityType]string{
		domain.EntitySchool:  "escolas.csv",
		domain.EntityClass:   "turmas.csv",
		domain.EntityTeacher: "professores.csv",
		domain.EntityStudent: "alunos.csv",
		domain.EntityRole:    "funcoes.csv",
	}
	for kind, filename := range want {
		art, ok, err := store.Export(ctx, kind)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", kind, ok, err)
		}
		if art.Filename != filename {
			t.Fatalf("%s: expected %s, got %s", kind, filename, art.Filename)
		}
	}
	art, _, _ := store.Export(ctx, domain.EntityStudent)
	if !strings.HasSuffix(string(art.Payload), ",true") {
		t.Fatalf("expected bare boolean at end of student row, got %s", art.Payload)
	}
}

func TestExportUnknownKind(t *testing.T) {
	store, _ := newTestStore(t)
	if _, _, err := store.Export(context.Background(), "planet"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
