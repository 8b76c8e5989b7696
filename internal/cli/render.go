package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/napobear/FEN2SVG/pkg/diagram"
	"github.com/napobear/FEN2SVG/pkg/diagram/sink"
	"github.com/napobear/FEN2SVG/pkg/errors"
	"github.com/napobear/FEN2SVG/pkg/fen"
	"github.com/napobear/FEN2SVG/pkg/templates"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	border        bool   // draw a frame around the board
	coordinates   bool   // draw rank and file labels
	moveIndicator bool   // draw the side-to-move marker
	rotate        bool   // put black at the bottom when black is to move
	fenNames      bool   // derive output names from the FEN instead of numbering
	fenStrings    bool   // arguments are FEN records, not input files
	template      string // custom glyph template path (default: embedded)
	outputDir     string // destination directory for the diagrams
	config        string // TOML defaults file path
}

// record is one FEN line together with where it came from, for
// diagnostics.
type record struct {
	origin string // "file:line" or "arg N"
	line   string // the 75-byte excerpt
}

// newRenderCmd creates the render command, the batch FEN-to-SVG
// pipeline. Each input line yields one SVG file; unreadable input
// files and malformed positions are skipped with a warning, while
// template and output failures abort the run.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [flags] <file|fen>...",
		Short: "Render FEN records as SVG diagrams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, meta, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, cfg, meta)
			return runRender(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.border, "border", "b", false, "draw a border around the board")
	cmd.Flags().BoolVarP(&opts.coordinates, "coordinates", "c", false, "draw rank and file coordinates")
	cmd.Flags().BoolVarP(&opts.moveIndicator, "move-indicator", "m", false, "draw the side-to-move marker")
	cmd.Flags().BoolVarP(&opts.rotate, "rotate", "r", false, "show black at the bottom when black is to move")
	cmd.Flags().BoolVarP(&opts.fenNames, "fen-names", "p", false, "name output files after the position instead of numbering them")
	cmd.Flags().BoolVarP(&opts.fenStrings, "strings", "s", false, "treat arguments as FEN strings instead of input files")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "glyph template file (default: embedded template)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory to write diagrams into")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML defaults file (default: ./"+defaultConfigFile+")")

	return cmd
}

// loadTemplate opens the glyph template, falling back to the embedded
// default when no path is given.
func loadTemplate(path string) (*sink.Template, error) {
	if path == "" {
		return sink.Load(bytes.NewReader(templates.Board()))
	}
	return sink.LoadFile(path)
}

// runRender drives the batch pipeline: load the template, gather the
// FEN records, render each one and write it out.
func runRender(ctx context.Context, args []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx).With("run", shortRunID())
	prog := newProgress(logger)

	tmpl, err := loadTemplate(opts.template)
	if err != nil {
		return err
	}
	logger.Debugf("Template loaded (%s)", templateSource(opts.template))

	if opts.outputDir != "." && opts.outputDir != "" {
		if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeOutputFile, err, "cannot create output directory %s", opts.outputDir)
		}
	}

	records, skippedFiles := gatherRecords(ctx, args, opts.fenStrings)
	logger.Infof("Collected %d positions from %d arguments", len(records), len(args))

	cfg := diagram.Config{
		Border:        opts.border,
		Coordinates:   opts.coordinates,
		MoveIndicator: opts.moveIndicator,
		Rotate:        opts.rotate,
		FENNames:      opts.fenNames,
	}

	fitted := tmpl.Fit(cfg.Width(), cfg.Height())

	// The static board layer only depends on the orientation, so it is
	// computed at most twice per run.
	boards := make(map[diagram.Orientation][]diagram.Use, 2)

	rendered := 0
	malformed := 0
	for _, rec := range records {
		pos, err := fen.Parse(rec.line)
		if err != nil {
			malformed++
			logger.Warnf("%s: %v", rec.origin, errors.Wrap(errors.ErrCodeMalformedFEN, err, "skipping position"))
			continue
		}

		o := cfg.OrientationFor(pos)
		board, ok := boards[o]
		if !ok {
			board = diagram.EmptyBoard(cfg, o)
			boards[o] = board
		}

		name := diagram.NumberedFileName(rendered + 1)
		if cfg.FENNames {
			name = diagram.FileNameFromFEN(rec.line)
		}
		path := filepath.Join(opts.outputDir, name)

		doc := sink.Render(fitted, board, diagram.Pieces(pos, cfg, o))
		if err := writeDiagram(path, doc); err != nil {
			return err
		}
		logger.Debugf("Wrote %s (%s, %d bytes)", path, o, len(doc))
		rendered++
	}

	prog.done(fmt.Sprintf("Rendered %d diagrams", rendered))
	printSuccess("Rendered %d of %d positions into %s", rendered, len(records), opts.outputDir)
	if malformed > 0 {
		printWarning("%d malformed positions skipped", malformed)
	}
	if skippedFiles > 0 {
		printWarning("%d unreadable input files skipped", skippedFiles)
	}
	return nil
}

// gatherRecords collects FEN records from the arguments. In string
// mode every argument is one record; in file mode each argument names
// a file read line by line. Unreadable files are skipped with a
// warning and counted; blank lines are dropped. Every record is
// truncated to the useful FEN excerpt.
func gatherRecords(ctx context.Context, args []string, fenStrings bool) ([]record, int) {
	logger := loggerFromContext(ctx)

	var records []record
	if fenStrings {
		for i, arg := range args {
			line := fen.Excerpt(arg)
			if isBlankLine(line) {
				continue
			}
			records = append(records, record{origin: fmt.Sprintf("arg %d", i+1), line: line})
		}
		return records, 0
	}

	skipped := 0
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			skipped++
			logger.Warnf("%s", errors.Wrap(errors.ErrCodeInputFile, err, "skipping input file %s", path))
			continue
		}

		scanner := bufio.NewScanner(f)
		for n := 1; scanner.Scan(); n++ {
			line := fen.Excerpt(scanner.Text())
			if isBlankLine(line) {
				continue
			}
			records = append(records, record{origin: fmt.Sprintf("%s:%d", path, n), line: line})
		}
		if err := scanner.Err(); err != nil {
			skipped++
			logger.Warnf("%s", errors.Wrap(errors.ErrCodeInputFile, err, "skipping rest of input file %s", path))
		}
		f.Close()
	}
	return records, skipped
}

// writeDiagram creates the output file and writes the SVG document.
// Any failure here is fatal for the run.
func writeDiagram(path string, doc []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputFile, err, "cannot create %s", path)
	}
	if _, err := f.Write(doc); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutputFile, err, "cannot write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputFile, err, "cannot close %s", path)
	}
	return nil
}

// isBlankLine reports whether a record holds no characters worth
// parsing.
func isBlankLine(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

// shortRunID returns a compact id correlating all log lines of one
// invocation.
func shortRunID() string {
	return uuid.NewString()[:8]
}

// templateSource names where the glyph template came from, for debug
// logging.
func templateSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
