// Package extract implements the program's main action: read the navigation
// of one EPUB and save it as a Markdown outline next to the book.
package extract

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/simp-lee/epubtoc/config"
	"github.com/simp-lee/epubtoc/epub"
	"github.com/simp-lee/epubtoc/outline"
	"github.com/simp-lee/epubtoc/state"
)

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input EPUB has been specified")
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	dst, err := Extract(ctx, src, env.Cfg, log)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(env.Out, "Success! Table of contents saved to: %s\n", dst); err != nil {
		return fmt.Errorf("unable to report result: %w", err)
	}
	return nil
}

// Extract writes the outline of the EPUB at src and returns the name of the
// written file. The outline goes to the same directory as src.
func Extract(ctx context.Context, src string, cfg *config.Config, log *zap.Logger) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	book, err := epub.Open(src)
	if err != nil {
		return "", &LoadError{Path: src, Err: err}
	}
	defer func() {
		if err := book.Close(); err != nil {
			log.Warn("Unable to close EPUB", zap.String("source", src), zap.Error(err))
		}
	}()

	for _, w := range book.Warnings() {
		log.Warn("EPUB problem", zap.String("source", src), zap.String("details", w))
	}

	title, ok := book.Title()
	if !ok {
		log.Debug("Book has no title, using default", zap.String("title", cfg.Outline.DefaultTitle))
	}

	nav := book.Navigation()
	doc := outline.NewDocument(title, nav)
	log.Debug("Navigation loaded",
		zap.String("source", src),
		zap.String("version", book.Version()),
		zap.Int("nodes", epub.CountNodes(nav)),
		zap.Int("entries", len(doc.Entries)))

	if len(doc.Entries) == 0 {
		log.Warn("Book has no table of contents entries, outline will hold the title only", zap.String("source", src))
	}

	dst := cfg.Outline.OutputPath(src)
	if err := outline.WriteFile(dst, cfg.Outline.Renderer().Render(doc.Title, doc.Entries)); err != nil {
		return "", &WriteError{Path: dst, Err: err}
	}
	log.Debug("Outline saved", zap.String("destination", dst))
	return dst, nil
}
