package cmd

import (
	"os"

	"github.com/trustedfirmware/lavagen/log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lavagen",
	Short: "Generates LAVA test jobs for firmware runs on Arm FVP models",
	Long: `lavagen supports the firmware CI pipeline: it resolves build artifacts
(bootloaders, kernels, device trees) to URLs, selects the simulator binary
for an FVP model from the model registry, and renders YAML test-job
descriptions for the LAVA test lab.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}
