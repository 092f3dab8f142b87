package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"vkrustgen/internal/rustgen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <schema.py>",
		Short: "Generate the Rust module from the schema source",
		Long: `Generate the Rust module from the Python schema declarations.

The schema source is read in full, every dataclass and Enum declaration is
extracted, and the Rust output is written only if the whole schema renders
cleanly. A failed run never leaves a partial file behind.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "vulkan_object.rs", "output file path")

	return cmd
}

func runGenerate(opts *GenerateOptions, schemaPath string, cmd *cobra.Command) error {
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

	formatter.VerboseLog("Extracted %d record(s), %d enum(s) from %s",
		len(s.Records), len(s.Enums), schemaPath)
	if opts.Verbose {
		formatter.VerboseLog("%s", spew.Sdump(s))
	}

	text, err := rustgen.New(s).Generate()
	if err != nil {
		var orderErr *rustgen.OrderError
		if errors.As(err, &orderErr) {
			_ = formatter.Errors(ErrCodeOrder, []error{err})
			return NewExitError(ExitCommandError, err.Error())
		}
		_ = formatter.Errors(ErrCodeRender, []error{err})
		return NewExitError(ExitFailure, err.Error())
	}

	if err := os.WriteFile(opts.Output, []byte(text), 0644); err != nil {
		_ = formatter.Errors(ErrCodeIO, []error{err})
		return NewExitError(ExitFailure, fmt.Sprintf("writing %s", opts.Output))
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{
			"output":  opts.Output,
			"records": len(s.Records),
			"enums":   len(s.Enums),
		})
	}
	fmt.Fprintf(formatter.Writer, "Generated %s\n", opts.Output)
	return nil
}
