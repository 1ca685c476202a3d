// Package pipeline runs the release-notes generation steps in order:
// gather change context, build the prompt, call the generator, extract
// and validate the payload, write the output file. Any failure aborts
// the run; the output file is written only after validation succeeds.
package pipeline

import (
	"context"
	"fmt"

	"github.com/masmgr/whatsnew-go/internal/gitctx"
	"github.com/masmgr/whatsnew-go/internal/notes"
	"github.com/masmgr/whatsnew-go/internal/output"
	"github.com/masmgr/whatsnew-go/internal/prompt"
)

// Generator produces free-form text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options identifies the revision range and the output destination.
type Options struct {
	FromSHA    string
	ToSHA      string
	OutputPath string
}

// Run executes the full pipeline.
func Run(ctx context.Context, opts Options, source gitctx.Source, gen Generator) error {
	change, err := source.Gather(ctx, opts.FromSHA, opts.ToSHA)
	if err != nil {
		return fmt.Errorf("gather change context: %w", err)
	}

	raw, err := gen.Generate(ctx, prompt.Build(change))
	if err != nil {
		return fmt.Errorf("generate release notes: %w", err)
	}

	payload, err := notes.ExtractObject(raw)
	if err != nil {
		return err
	}

	validated, err := notes.Validate(payload)
	if err != nil {
		return err
	}

	return output.WriteNotes(opts.OutputPath, validated)
}
