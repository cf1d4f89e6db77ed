// Package coverity filters and classifies Coverity scan reports for the
// firmware tree: imported third-party directories and waived MISRA rules are
// dropped, and the remaining defects are tallied by severity.
package coverity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Issue is one defect occurrence surviving the filters.
type Issue struct {
	CID            int    `json:"cid"`
	File           string `json:"file"`
	Line           int    `json:"line"`
	Checker        string `json:"checker"`
	Classification string `json:"classification"`
	Description    string `json:"description"`
}

// Summary holds the filtered issues and the per-classification totals.
// Totals count defect groups (unique CIDs), not individual occurrences;
// the "total" key carries the overall count.
type Summary struct {
	Issues []Issue
	Totals map[string]int
}

type v1Occurrence struct {
	Checker     string `json:"checker"`
	File        string `json:"file"`
	Line        int    `json:"mainEventLineNumber"`
	Description string `json:"mainEventDescription"`
}

type v1Group struct {
	CID    int `json:"cid"`
	Triage struct {
		Action string `json:"action"`
	} `json:"triage"`
	Occurrences                 []v1Occurrence `json:"occurrences"`
	PresentInComparisonSnapshot bool           `json:"presentInComparisonSnapshot"`
}

type v7Event struct {
	File        string `json:"strippedFilePathname"`
	Line        int    `json:"lineNumber"`
	Description string `json:"eventDescription"`
}

type v7Group struct {
	CID         int       `json:"cid"`
	CheckerName string    `json:"checkerName"`
	MainFile    string    `json:"strippedMainEventFilePathname"`
	Events      []v7Event `json:"events"`
}

type report struct {
	FormatVersion int       `json:"formatVersion"`
	Issues        []v7Group `json:"issues"`
	IssueInfo     []v1Group `json:"issueInfo"`
}

func inIgnoredDir(file string) bool {
	file = strings.TrimLeft(file, "/")
	for _, dir := range ignoredDirs {
		if strings.HasPrefix(file, dir) {
			return true
		}
	}
	return false
}

// ParseReport filters a Coverity JSON report. Format versions 1-6 use the
// `issueInfo` group list; version 7 and later use `issues`. When `showAll`
// is false, v1-6 groups already present in the comparison (golden) snapshot
// are dropped, leaving only defects introduced on the branch.
func ParseReport(data []byte, showAll bool) (*Summary, error) {
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %s", err)
	}

	summary := &Summary{Totals: map[string]int{}}
	if rep.FormatVersion >= 7 {
		summary.collectV7(rep.Issues)
	} else {
		summary.collectV1(rep.IssueInfo, showAll)
	}

	sort.Slice(summary.Issues, func(i, j int) bool {
		return sortKey(summary.Issues[i]) < sortKey(summary.Issues[j])
	})
	return summary, nil
}

func (s *Summary) collectV1(groups []v1Group, showAll bool) {
	for _, group := range groups {
		if group.Triage.Action == "Ignore" {
			continue
		}
		if len(group.Occurrences) == 0 {
			continue
		}
		if ruleExclusions[group.Occurrences[0].Checker] {
			continue
		}
		if inIgnoredDir(group.Occurrences[0].File) {
			continue
		}
		if !showAll && group.PresentInComparisonSnapshot {
			continue
		}

		s.Totals[ClassifyChecker(group.Occurrences[0].Checker)]++
		s.Totals["total"]++
		for _, occurrence := range group.Occurrences {
			s.Issues = append(s.Issues, Issue{
				CID:            group.CID,
				File:           strings.TrimLeft(occurrence.File, "/"),
				Line:           occurrence.Line,
				Checker:        occurrence.Checker,
				Classification: ClassifyChecker(occurrence.Checker),
				Description:    occurrence.Description,
			})
		}
	}
}

func (s *Summary) collectV7(groups []v7Group) {
	// TODO: filter v7 groups by triage action once the scan exports it.
	for _, group := range groups {
		if ruleExclusions[group.CheckerName] {
			continue
		}
		if inIgnoredDir(group.MainFile) {
			continue
		}

		s.Totals[ClassifyChecker(group.CheckerName)]++
		s.Totals["total"]++
		for _, event := range group.Events {
			s.Issues = append(s.Issues, Issue{
				CID:            group.CID,
				File:           event.File,
				Line:           event.Line,
				Checker:        group.CheckerName,
				Classification: ClassifyChecker(group.CheckerName),
				Description:    event.Description,
			})
		}
	}
}

// sortKey identifies a defect across the scan: file, zero-padded line,
// checker, zero-padded CID.
func sortKey(i Issue) string {
	return fmt.Sprintf("%s%05d%s%05d", i.File, i.Line, i.Checker, i.CID)
}

func classSuffix(i Issue) string {
	if i.Classification == "unknown" {
		return ""
	}
	return " (" + i.Classification + ")"
}

// FormatIssue renders one issue as a single line of text.
func FormatIssue(i Issue) string {
	return fmt.Sprintf("%s:%d:[%s%s]<%d> %s", i.File, i.Line, i.Checker, classSuffix(i), i.CID, i.Description)
}

// FormatIssueHTML renders one issue as an HTML table row.
func FormatIssueHTML(i Issue) string {
	return fmt.Sprintf(`<tr class="cov-%s">
  <td class="cov-file">%s</td>
  <td class="cov-line">%d</td>
  <td class="cov-checker">%s%s</td>
  <td class="cov-cid">%d</td>
  <td class="cov-description">%s</td>
</tr>`, i.Classification, i.File, i.Line, i.Checker, classSuffix(i), i.CID, i.Description)
}

// FormatTotals renders the flat-text totals block consumed by the CI
// dashboard.
func FormatTotals(totals map[string]int) string {
	return fmt.Sprintf(`TotalDefects:     %d
MandatoryDefects: %d
RequiredDefects:  %d
AdvisoryDefects:  %d`, totals["total"], totals["mandatory"], totals["required"], totals["advisory"])
}
