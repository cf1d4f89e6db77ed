package render

import (
	"fmt"
	"strings"

	"github.com/trustedfirmware/lavagen/util"
)

// BootArgsMarker is the line in a rendered template that gets replaced by
// the injected simulator parameters.
const BootArgsMarker = "{BOOT_ARGUMENTS}"

// bootArgMacros rewrites binary file-name literals to the symbolic macros
// the lab scheduler expands when dispatching the job. The list is ordered;
// replacements are applied to the whole line in this order.
var bootArgMacros = []struct {
	literal string
	macro   string
}{
	{"bl1.bin", "{BL1}"},
	{"fip.bin", "{FIP}"},
	{"ns_bl1u.bin", "{NS_BL1U}"},
	{"ns_bl2u.bin", "{NS_BL2U}"},
	{"el3_payload.bin", "{EL3_PAYLOAD}"},
	{"kernel.bin", "{KERNEL}"},
	{"initrd.bin", "{INITRD}"},
}

// RewriteMacros replaces firmware image filenames in a simulator parameter
// line with the scheduler's macro tokens.
func RewriteMacros(line string) string {
	for _, m := range bootArgMacros {
		line = strings.ReplaceAll(line, m.literal, m.macro)
	}
	return line
}

// LoadBootArgs reads the side file of simulator command-line parameters, one
// per line, applying macro rewriting. Line order is preserved; blank lines
// are kept and skipped at injection time.
func LoadBootArgs(path string) []string {
	if !util.FileExists(path) {
		return nil
	}

	lines := strings.Split(strings.TrimRight(string(util.ReadFile(path)), "\n"), "\n")
	args := make([]string, 0, len(lines))
	for _, line := range lines {
		args = append(args, RewriteMacros(strings.TrimSpace(line)))
	}
	return args
}

// Inject inserts one YAML sequence item per non-empty entry of `args`
// immediately before the line containing `marker`, preserving order, and
// removes the marker line. Injection consumes the marker, so callers must
// invoke it exactly once per rendered document.
func Inject(doc string, args []string, marker string) string {
	lines := strings.Split(doc, "\n")
	result := make([]string, 0, len(lines)+len(args))

	for _, line := range lines {
		if !strings.Contains(line, marker) {
			result = append(result, line)
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		for _, arg := range args {
			if arg == "" {
				continue
			}
			result = append(result, fmt.Sprintf("%s- %q", indent, arg))
		}
	}

	return strings.Join(result, "\n")
}
