package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newFormatCmd creates and returns the format command.
func newFormatCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "format [dir]",
		Short: "Rewrite every fragment in canonical form",
		Long: `Load and validate the package in dir (default: the working directory) and
write it back, one file per entity under its kind's directory. Formatting in place
removes the fragments whose declarations moved to their canonical paths. With
--output the package is written to another directory and the source is untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, packageDir(args), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory to write to (default: the package directory)")
	return cmd
}

func runFormat(cmd *cobra.Command, dir, output string) error {
	ctx := cmd.Context()
	svc, err := newPackageService(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if output == "" {
		output = dir
	}
	result, err := svc.Format(ctx, dir, output)
	if err != nil {
		return err
	}
	for _, path := range result.Written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	for _, path := range result.Removed {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
	}
	return nil
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newFormatCmd())
}
