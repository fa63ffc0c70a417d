package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// bindFlag binds a flag to a configuration key, so the flag overrides the config file and
// environment when it is set.
func bindFlag(key string, flag *pflag.Flag) {
	if err := vp.BindPFlag(key, flag); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag.Name, err)
	}
}

// packageDir returns the package directory argument, defaulting to the working directory.
func packageDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
