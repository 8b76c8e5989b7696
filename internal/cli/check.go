package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/napobear/FEN2SVG/pkg/errors"
	"github.com/napobear/FEN2SVG/pkg/fen"
)

// newCheckCmd creates the check command. It runs the same parsing as
// render but writes no files, so a batch can be validated before
// generating diagrams.
func newCheckCmd() *cobra.Command {
	var fenStrings bool

	cmd := &cobra.Command{
		Use:   "check [flags] <file|fen>...",
		Short: "Validate FEN records without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args, fenStrings)
		},
	}

	cmd.Flags().BoolVarP(&fenStrings, "strings", "s", false, "treat arguments as FEN strings instead of input files")

	return cmd
}

// runCheck parses every record and reports diagnostics. It fails when
// any position is malformed, so it can gate a render in scripts.
func runCheck(ctx context.Context, args []string, fenStrings bool) error {
	logger := loggerFromContext(ctx)

	records, skippedFiles := gatherRecords(ctx, args, fenStrings)
	logger.Debugf("Collected %d positions", len(records))

	malformed := 0
	for _, rec := range records {
		if _, err := fen.Parse(rec.line); err != nil {
			malformed++
			printError("%s: %v", rec.origin, err)
		}
	}

	if malformed == 0 && skippedFiles == 0 {
		printSuccess("All %d positions parse", len(records))
		return nil
	}

	if malformed == 0 {
		printWarning("%d positions parse, but %d input files were unreadable", len(records), skippedFiles)
		return nil
	}

	printDetail("%d of %d positions malformed", malformed, len(records))
	return errors.New(errors.ErrCodeMalformedFEN, "%d malformed positions", malformed)
}
