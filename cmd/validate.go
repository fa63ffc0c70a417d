package cmd

import (
	"errors"
	"fmt"

	"packagedsl/internal/application/dto"
	"packagedsl/internal/domain/entity"

	"github.com/spf13/cobra"
)

// newValidateCmd creates and returns the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [dir]",
		Short: "Check that every referenced fragment exists",
		Long: `Load the package in dir (default: the working directory) and check its
references: every dependency named by a product or target must be declared as a
dependency or target, and every name listed by the index must have a fragment.
All missing sources are reported together.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newPackageService(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := svc.Load(ctx, packageDir(args))

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		for _, m := range dto.NewMissingSourceResponses(validationErr.Missing) {
			fmt.Fprintf(out, "missing %s %q (referenced by %s)\n", m.Kind, m.Name, m.Source)
		}
		return err
	}
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: %s: %s\n", w.Path, w.Message)
	}
	fmt.Fprintf(out, "ok: %d fragments, %d entities\n", len(result.Fragments), len(result.Configuration.Entities()))
	return nil
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newValidateCmd())
}
