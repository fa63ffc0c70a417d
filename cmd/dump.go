package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"packagedsl/internal/application/dto"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newDumpCmd creates and returns the dump command.
func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [dir]",
		Short: "Print the package configuration",
		Long: `Load and validate the package in dir (default: the working directory) and
print the aggregated configuration as YAML or JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDump,
	}

	cmd.Flags().String("format", "yaml", "Output format (yaml, json)")
	bindFlag("output.format", cmd.Flags().Lookup("format"))
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newPackageService(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := svc.Load(ctx, packageDir(args))
	if err != nil {
		return err
	}

	return encode(cmd.OutOrStdout(), cfg.Output.Format,
		dto.NewConfigurationResponse(result.Configuration, result.Warnings))
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newDumpCmd())
}
