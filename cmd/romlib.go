package cmd

import (
	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/romlib"
	"github.com/trustedfirmware/lavagen/util"

	"github.com/spf13/cobra"
)

var romlibCmd = &cobra.Command{
	Use:   "romlib",
	Args:  cobra.NoArgs,
	Short: "Edits the romlib jump table",
	Long:  `Edits the romlib jump table.`,
}

var romlibOutput string

func init() {
	patchCommand := &cobra.Command{
		Use:   "patch jumptable function [function...]",
		Args:  cobra.MinimumNArgs(2),
		Short: "Marks jump table functions as patched",
		Long: `Marks jump table functions as patched, so the romlib build links their
patched implementations. The firmware rebuild itself is driven by the
build system, not by this tool.`,
		Run: runRomlibPatch,
	}
	patchCommand.Flags().StringVarP(&romlibOutput, "output", "o", "", "File to write the patched jump table to (defaults to in-place)")

	romlibCmd.AddCommand(patchCommand)
	rootCmd.AddCommand(romlibCmd)
}

func runRomlibPatch(cmd *cobra.Command, args []string) {
	jumptablePath := args[0]

	index, err := romlib.Parse(string(util.ReadFile(jumptablePath)))
	if err != nil {
		log.Fatal("Failed to parse jump table '%s': %s.\n", jumptablePath, err)
	}

	if err := index.PatchFunctions(args[1:]); err != nil {
		log.Fatal("Failed to patch jump table: %s.\n", err)
	}

	outputPath := romlibOutput
	if outputPath == "" {
		outputPath = jumptablePath
	}
	util.WriteFile(outputPath, []byte(index.String()))

	log.Success("Patched jump table written to '%s'.\n", outputPath)
}
