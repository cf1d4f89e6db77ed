package coverity

import "regexp"

// Directories imported from other projects. Their code style is not
// necessarily ours, and enforcing our rules on their code mostly produces
// false positives.
var ignoredDirs = []string{
	"lib/libfdt",
	"include/lib/libfdt",
	"lib/compiler-rt",
	"lib/zlib",
	"include/lib/zlib",
}

// Checkers whose findings are excluded from the scan wholesale.
var ruleExclusions = map[string]bool{
	"MISRA C-2012 Rule 2.4":       true,
	"MISRA C-2012 Rule 2.5":       true,
	"MISRA C-2012 Rule 2.7":       true,
	"MISRA C-2012 Rule 5.1":       true,
	"MISRA C-2012 Rule 5.8":       true,
	"MISRA C-2012 Rule 8.6":       true,
	"MISRA C-2012 Rule 8.7":       true,
	"MISRA C-2012 Rule 11.4":      true,
	"MISRA C-2012 Rule 11.5":      true,
	"MISRA C-2012 Rule 15.1":      true,
	"MISRA C-2012 Rule 15.5":      true,
	"MISRA C-2012 Rule 15.6":      true,
	"MISRA C-2012 Rule 16.1":      true,
	"MISRA C-2012 Rule 16.3":      true,
	"MISRA C-2012 Rule 17.1":      true,
	"MISRA C-2012 Rule 21.6":      true,
	"MISRA C-2012 Directive 4.6":  true,
	"MISRA C-2012 Directive 4.8":  true,
	"MISRA C-2012 Directive 4.9":  true,
}

// The following classification of rules and directives includes
// 'MISRA C:2012 Amendment 1'.

var dirRequired = newSet("1.1", "2.1", "3.1", "4.1", "4.3", "4.7", "4.10", "4.11",
	"4.12", "4.14")

var dirAdvisory = newSet("4.2", "4.4", "4.5", "4.6", "4.8", "4.9", "4.13")

var ruleMandatory = newSet("9.1", "9.2", "9.3", "12.5", "13.6", "17.3", "17.4",
	"17.6", "19.1", "21.13", "21.17", "21.18", "21.19", "21.20", "22.2", "22.5",
	"22.6")

var ruleRequired = newSet("1.1", "1.3", "2.1", "2.2", "3.1", "3.2", "4.1", "5.1",
	"5.2", "5.3", "5.4", "5.5", "5.6", "5.7", "5.8", "6.1", "6.2", "7.1", "7.2",
	"7.3", "7.4", "8.1", "8.2", "8.3", "8.4", "8.5", "8.6", "8.7", "8.8",
	"8.10", "8.12", "8.14", "9.2", "9.3", "9.4", "9.5", "10.1", "10.2", "10.3",
	"10.4", "10.6", "10.7", "10.8", "11.1", "11.2", "11.3", "11.6", "11.7",
	"11.8", "11.9", "12.2", "13.1", "13.2", "13.5", "14.1", "14.2", "14.3",
	"14.4", "15.2", "15.3", "15.6", "15.7", "16.1", "16.2", "16.3", "16.4",
	"16.5", "16.6", "16.7", "17.1", "17.2", "17.7", "18.1", "18.2", "18.3",
	"18.6", "18.7", "18.8", "20.3", "20.4", "20.6", "20.7", "20.8", "20.9",
	"20.11", "20.12", "20.13", "20.14", "21.1", "21.2", "21.3", "21.4", "21.5",
	"21.6", "21.7", "21.8", "21.9", "21.10", "21.11", "21.14", "21.15", "21.16",
	"22.1", "22.3", "22.4", "22.7", "22.8", "22.9", "22.10")

var ruleAdvisory = newSet("1.2", "2.3", "2.4", "2.5", "2.6", "2.7", "4.2", "5.9",
	"8.9", "8.11", "8.13", "10.5", "11.4", "11.5", "12.1", "12.3", "12.4",
	"13.3", "13.4", "15.1", "15.4", "15.5", "17.5", "17.8", "18.4", "18.5",
	"19.2", "20.1", "20.2", "20.5", "20.10", "21.12")

type checkerClass struct {
	classification string
	numbers        map[string]bool
}

// Lookup order matters: some rule numbers appear in more than one class, and
// the stronger classification wins.
var checkerLookup = map[string][]checkerClass{
	"Directive": {
		{"required", dirRequired},
		{"advisory", dirAdvisory},
	},
	"Rule": {
		{"mandatory", ruleMandatory},
		{"required", ruleRequired},
		{"advisory", ruleAdvisory},
	},
}

var checkerRe = regexp.MustCompile(`(\w+) ([\d.]+)$`)

func newSet(numbers ...string) map[string]bool {
	set := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		set[n] = true
	}
	return set
}

// ClassifyChecker maps a checker name like "MISRA C-2012 Rule 9.1" to
// "mandatory", "required", "advisory", or "unknown".
func ClassifyChecker(checker string) string {
	match := checkerRe.FindStringSubmatch(checker)
	if match != nil {
		kind, number := match[1], match[2]
		for _, class := range checkerLookup[kind] {
			if class.numbers[number] {
				return class.classification
			}
		}
	}
	return "unknown"
}
