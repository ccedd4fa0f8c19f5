// Package report builds the analyst prompt from registry statistics and hands
// it to an external text generator.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"edugestao/pkg/domain"
)

// Messages returned in place of a report. Generation never fails with an error.
const (
	MsgMissingKey = "Error: API key not configured. Please configure the API key."
	MsgEmpty      = "The report could not be generated."
	MsgFailed     = "An error occurred while contacting the report service. Check your API key."
	MsgNoService  = "Report generation is not available: no report service is linked into this build."
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Reporter produces executive reports.
type Reporter struct {
	gen    Generator
	apiKey string
	log    zerolog.Logger
}

// New returns a Reporter. A blank apiKey yields MsgMissingKey and a nil gen
// yields MsgNoService.
func New(gen Generator, apiKey string, log zerolog.Logger) *Reporter {
	return &Reporter{gen: gen, apiKey: apiKey, log: log}
}

// Prompt renders the instructions with stats embedded as indented JSON.
func Prompt(stats domain.Stats) (string, error) {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode stats: %w", err)
	}
	var b strings.Builder
	b.WriteString("Act as an educational data analyst. Analyse the following metadata from a school management system and write a short, professional executive report in Markdown.\n\n")
	b.WriteString("System data:\n")
	b.Write(data)
	b.WriteString("\n\nThe report must contain:\n")
	b.WriteString("1. A general summary of the health of the registry.\n")
	b.WriteString("2. An analysis of proportions (for example, students per school).\n")
	b.WriteString("3. Illustrative improvement suggestions based on the numbers (for example, too few teachers for many students).\n\n")
	b.WriteString("Be concise.\n")
	return b.String(), nil
}

// Generate returns the generated report or one of the Msg* texts.
func (r *Reporter) Generate(ctx context.Context, stats domain.Stats) string {
	if strings.TrimSpace(r.apiKey) == "" {
		return MsgMissingKey
	}
	if r.gen == nil {
		return MsgNoService
	}
	prompt, err := Prompt(stats)
	if err != nil {
		r.log.Error().Err(err).Msg("build report prompt")
		return MsgFailed
	}
	text, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		r.log.Error().Err(err).Msg("report generator failed")
		return MsgFailed
	}
	if strings.TrimSpace(text) == "" {
		return MsgEmpty
	}
	return text
}
