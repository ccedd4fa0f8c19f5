package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"edugestao/pkg/domain"
)

var sampleStats = domain.Stats{
	TotalSchools: 2, TotalClasses: 3, TotalTeachers: 4, ActiveTeachers: 3,
	TotalStudents: 40, ActiveStudents: 38, TotalRoles: 1,
	SchoolNames: []string{"Escola A", "Escola B"},
}

func TestPromptEmbedsStats(t *testing.T) {
	prompt, err := Prompt(sampleStats)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	for _, want := range []string{`"totalSchools": 2`, `"activeStudents": 38`, `"schoolsList": [`, `"Escola B"`, "Be concise."} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateOutcomes(t *testing.T) {
	var seen string
	ok := GeneratorFunc(func(_ context.Context, prompt string) (string, error) {
		seen = prompt
		return "# Report", nil
	})
	failing := GeneratorFunc(func(context.Context, string) (string, error) { return "", errors.New("quota") })
	blank := GeneratorFunc(func(context.Context, string) (string, error) { return "  ", nil })

	tests := []struct {
		name string
		gen  Generator
		key  string
		want string
	}{
		{name: "missing key", gen: ok, key: "", want: MsgMissingKey},
		{name: "missing generator", gen: nil, key: "k", want: MsgNoService},
		{name: "missing key and generator", gen: nil, key: "", want: MsgMissingKey},
		{name: "generator error", gen: failing, key: "k", want: MsgFailed},
		{name: "empty response", gen: blank, key: "k", want: MsgEmpty},
		{name: "success", gen: ok, key: "k", want: "# Report"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.gen, tc.key, zerolog.Nop()).Generate(context.Background(), sampleStats)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
	if !strings.Contains(seen, `"totalTeachers": 4`) {
		t.Fatalf("generator did not receive the stats prompt: %s", seen)
	}
}
