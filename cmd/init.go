package cmd

import (
	"errors"
	"fmt"

	"packagedsl/internal/domain/valueobject"

	"github.com/spf13/cobra"
)

// newInitCmd creates and returns the init command.
func newInitCmd() *cobra.Command {
	var (
		name        string
		productType string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a package with a single product",
		Long: `Create a new package in dir (default: the working directory): an index that
lists one product and the product's fragment. The directory must not already
contain fragments.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, packageDir(args), name, productType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&productType, "type", "library", "Product type (library, executable, plugin)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func runInit(cmd *cobra.Command, dir, name, productType string) error {
	if name == "" {
		return errors.New("--name must not be empty")
	}
	pt, ok := valueobject.ParseProductType(productType)
	if !ok {
		return fmt.Errorf("unknown product type %q", productType)
	}

	ctx := cmd.Context()
	svc, err := newPackageService(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	written, err := svc.Init(ctx, dir, name, pt)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newInitCmd())
}
