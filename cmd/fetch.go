package cmd

import (
	"path"
	"strings"

	"github.com/trustedfirmware/lavagen/artifact"
	"github.com/trustedfirmware/lavagen/config"
	"github.com/trustedfirmware/lavagen/log"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch filename",
	Args:  cobra.ExactArgs(1),
	Short: "Downloads one build artifact to a local path",
	Long: `Downloads one build artifact to a local path. The artifact URL is
resolved the same way 'generate' resolves it; compressed payloads are
decompressed on the fly.`,
	Run: runFetch,
}

var fetchBuildMode string
var fetchOutput string

func init() {
	fetchCmd.Flags().StringVarP(&fetchBuildMode, "build-mode", "m", "", "Build mode of the artifact (e.g. debug, release)")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Destination path (defaults to the artifact name)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) {
	cfg := config.FromEnvironment()
	resolver := artifact.NewResolver(cfg)

	url, err := resolver.URL(args[0], fetchBuildMode)
	if err != nil {
		log.Fatal("%s.\n", err)
	}

	dest := fetchOutput
	if dest == "" {
		dest = strings.TrimSuffix(path.Base(args[0]), ".gz")
	}

	log.Log("Downloading '%s'.\n", url)
	log.Spinner.Start()
	err = artifact.Fetch(url, dest)
	log.Spinner.Stop()
	if err != nil {
		log.Fatal("%s.\n", err)
	}

	log.Success("Artifact stored at '%s'.\n", dest)
}
