package cli

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	Output string
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump <schema.py>",
		Short: "Dump the extracted schema as JSON",
		Long: `Extract the schema and serialize the intermediate representation as
indented JSON. Enum variants carry their positional ordinals, the same
values the generated Rust enumerations deserialize against.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}

func runDump(opts *DumpOptions, schemaPath string, cmd *cobra.Command) error {
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

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		_ = formatter.Errors(ErrCodeGeneric, []error{err})
		return NewExitError(ExitFailure, "marshaling schema")
	}

	if opts.Output == "" {
		fmt.Fprintln(formatter.Writer, string(data))
		return nil
	}
	if err := os.WriteFile(opts.Output, append(data, '\n'), 0644); err != nil {
		_ = formatter.Errors(ErrCodeIO, []error{err})
		return NewExitError(ExitFailure, fmt.Sprintf("writing %s", opts.Output))
	}
	formatter.VerboseLog("Wrote schema IR to %s", opts.Output)
	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"output": opts.Output})
	}
	fmt.Fprintf(formatter.Writer, "Wrote %s\n", opts.Output)
	return nil
}
