package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/trustedfirmware/lavagen/coverity"
	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/util"

	"github.com/spf13/cobra"
)

var coverityCmd = &cobra.Command{
	Use:   "coverity report.json",
	Args:  cobra.ExactArgs(1),
	Short: "Filters and summarizes a Coverity defect report",
	Long: `Filters and summarizes a Coverity defect report. Waived MISRA rules and
imported third-party directories are dropped; the remaining defects are
printed sorted and tallied by severity. The command exits with status 1
when any defect survives the filters, so CI gates can chain on it.`,
	Run: runCoverity,
}

var coverityShowAll bool
var coverityOutput string
var coverityTotals string

func init() {
	coverityCmd.Flags().BoolVar(&coverityShowAll, "all", false, "List all defects, including those in the golden snapshot")
	coverityCmd.Flags().StringVar(&coverityOutput, "output", "", "File to write the filtered defects to as JSON")
	coverityCmd.Flags().StringVar(&coverityTotals, "totals", "", "File to write the defect totals to as flat text")
	rootCmd.AddCommand(coverityCmd)
}

func runCoverity(cmd *cobra.Command, args []string) {
	summary, err := coverity.ParseReport(util.ReadFile(args[0]), coverityShowAll)
	if err != nil {
		log.Fatal("%s.\n", err)
	}

	for _, issue := range summary.Issues {
		fmt.Println(coverity.FormatIssue(issue))
	}

	if coverityOutput != "" {
		data, err := json.Marshal(summary.Issues)
		if err != nil {
			log.Fatal("Failed to serialize defects: %s.\n", err)
		}
		util.WriteFile(coverityOutput, data)
	}

	if coverityTotals != "" {
		util.WriteFile(coverityTotals, []byte(coverity.FormatTotals(summary.Totals)+"\n"))
	}

	if len(summary.Issues) > 0 {
		os.Exit(1)
	}
}
