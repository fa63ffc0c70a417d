package cmd

import (
	"fmt"
	"io"
	"os"

	"packagedsl/internal/domain/valueobject"

	"github.com/spf13/cobra"
)

// newAssembleCmd creates and returns the assemble command.
func newAssembleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "assemble [dir]",
		Short: "Join the fragments into a single manifest",
		Long: `Load and validate the package in dir (default: the working directory) and
join its fragments into one manifest: the swift-tools-version header, the
de-duplicated imports, every fragment in discovery order and finally the support
file, if one is configured. The manifest is printed unless --output is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, packageDir(args), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the manifest to (default: stdout)")
	cmd.Flags().String("swift-version", "6.0", "swift-tools-version written in the header")
	cmd.Flags().String("support", "", "Fragment appended verbatim after the package, relative to dir")
	bindFlag("package.swift_version", cmd.Flags().Lookup("swift-version"))
	bindFlag("package.support_file", cmd.Flags().Lookup("support"))
	return cmd
}

func runAssemble(cmd *cobra.Command, dir, output string) error {
	swiftVersion, err := valueobject.ParseSwiftVersion(cfg.Package.SwiftVersion)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, err := newPackageService(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	manifest, err := svc.Assemble(ctx, dir, swiftVersion)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), manifest)
		return err
	}
	if err := os.WriteFile(output, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newAssembleCmd())
}
