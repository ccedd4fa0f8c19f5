package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type recorder struct{ msg string }

func (r *recorder) Fatalf(format string, args ...any) { r.msg = fmt.Sprintf(format, args...) }

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDirectImportViolations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package x\n\nimport (\n\t\"fmt\"\n\t\"edugestao/internal/infra/kv/fs\"\n)\n")
	writeFile(t, dir, "a_test.go", "package x\n\nimport \"edugestao/internal/infra/kv/memory\"\n")
	writeFile(t, dir, "notes.txt", "edugestao/internal/infra/kv/s3")

	viols, err := directImportViolations(dir, InfraImportForbidden)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(viols) != 1 || viols[0] != "edugestao/internal/infra/kv/fs (in a.go)" {
		t.Fatalf("unexpected violations %v", viols)
	}
}

func TestDirectImportViolationsParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.go", "package")
	if _, err := directImportViolations(dir, InternalImportForbidden); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := directImportViolations(filepath.Join(dir, "missing"), InternalImportForbidden); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestFailIfViolations(t *testing.T) {
	var r recorder
	failIfViolations(&r, "reason", nil)
	if r.msg != "" {
		t.Fatalf("unexpected failure %q", r.msg)
	}
	failIfViolations(&r, "reason", []string{"a (in b.go)"})
	if !strings.Contains(r.msg, "a (in b.go)") {
		t.Fatalf("expected violation listed, got %q", r.msg)
	}
}

func TestPredicates(t *testing.T) {
	if !InternalImportForbidden("edugestao/internal/core") || InternalImportForbidden("edugestao/pkg/domain") {
		t.Fatalf("InternalImportForbidden mismatch")
	}
	if !InfraImportForbidden("edugestao/internal/infra/kv/redis") || InfraImportForbidden("edugestao/internal/kv") {
		t.Fatalf("InfraImportForbidden mismatch")
	}
}
