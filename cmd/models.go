package cmd

import (
	"fmt"

	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/registry"
	"github.com/trustedfirmware/lavagen/util"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Args:  cobra.NoArgs,
	Short: "Lists the FVP models known to the registry",
	Long:  `Lists the FVP models known to the registry.`,
	Run:   runModels,
}

var modelsYaml bool

func init() {
	modelsCmd.Flags().BoolVar(&modelsYaml, "yaml", false, "Print the registry as YAML")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) {
	reg := registry.Builtin()

	if modelsYaml {
		data, err := yaml.Marshal(reg.Entries())
		if err != nil {
			log.Fatal("Failed to serialize the model registry: %s.\n", err)
		}
		fmt.Print(string(data))
		return
	}

	rows := util.MappedSlice(reg.Entries(), func(entry registry.ModelEntry) string {
		if entry.Name == "" && entry.Dir == "" && entry.Bin == "" {
			return fmt.Sprintf("%-16s (container not available yet)", entry.ID)
		}
		return fmt.Sprintf("%-16s %s  %s/%s", entry.ID, entry.Name, entry.Dir, entry.Bin)
	})
	for _, row := range rows {
		fmt.Println(row)
	}
}
