package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vkrustgen/internal/rustgen"
)

// NewCheckCommand creates the check command.
//
// check runs the full pipeline in memory - extraction, declaration-order
// verification, rendering - without writing anything. It exists so the
// schema and the compiled-in order table can be validated in CI before a
// generate run touches the tree.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <schema.py>",
		Short:         "Verify the schema renders cleanly without writing output",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, errs := loadSchema(schemaPath)
	if len(errs) > 0 {
		_ = formatter.Errors(ErrCodeParse, errs)
		return NewExitError(ExitFailure, fmt.Sprintf("extraction failed with %d error(s)", len(errs)))
	}

	if _, err := rustgen.New(s).Generate(); err != nil {
		var orderErr *rustgen.OrderError
		if errors.As(err, &orderErr) {
			_ = formatter.Errors(ErrCodeOrder, []error{err})
			return NewExitError(ExitCommandError, err.Error())
		}
		_ = formatter.Errors(ErrCodeRender, []error{err})
		return NewExitError(ExitFailure, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{
			"records": len(s.Records),
			"enums":   len(s.Enums),
		})
	}
	fmt.Fprintf(formatter.Writer, "OK: %d record(s), %d enum(s)\n", len(s.Records), len(s.Enums))
	return nil
}
