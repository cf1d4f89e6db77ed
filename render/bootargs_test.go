package render

import (
	"os"
	"path"
	"strings"
	"testing"
)

func TestInject(t *testing.T) {
	doc := "arguments:\n    {BOOT_ARGUMENTS}\nprompts:\n"
	args := []string{"--flag1", "", "--flag2"}

	result := Inject(doc, args, BootArgsMarker)

	expected := "arguments:\n    - \"--flag1\"\n    - \"--flag2\"\nprompts:\n"
	if result != expected {
		t.Fatalf("got %q, want %q", result, expected)
	}
	if strings.Contains(result, BootArgsMarker) {
		t.Fatal("marker line survived injection")
	}
}

func TestInjectEmptyArgs(t *testing.T) {
	doc := "arguments:\n    {BOOT_ARGUMENTS}\nprompts:\n"

	result := Inject(doc, nil, BootArgsMarker)

	if result != "arguments:\nprompts:\n" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestInjectPreservesOrder(t *testing.T) {
	doc := "    {BOOT_ARGUMENTS}"
	args := []string{"-C cache_state_modelled=0", "-C bp.ve_sysregs.mmbSiteDefault=0", "--data cluster0.cpu0={BL1}@0x0"}

	result := Inject(doc, args, BootArgsMarker)

	lines := strings.Split(result, "\n")
	if len(lines) != len(args) {
		t.Fatalf("expected %d lines, got %d", len(args), len(lines))
	}
	for i, arg := range args {
		if !strings.Contains(lines[i], arg) {
			t.Fatalf("line %d does not carry %q: %q", i, arg, lines[i])
		}
	}
}

func TestRewriteMacros(t *testing.T) {
	line := "--data cluster0.cpu0=bl1.bin@0x0 --data cluster0.cpu0=fip.bin@0x08000000"

	rewritten := RewriteMacros(line)

	expected := "--data cluster0.cpu0={BL1}@0x0 --data cluster0.cpu0={FIP}@0x08000000"
	if rewritten != expected {
		t.Fatalf("got %q, want %q", rewritten, expected)
	}
}

func TestRewriteMacrosAllLiterals(t *testing.T) {
	for literal, macro := range map[string]string{
		"bl1.bin":         "{BL1}",
		"fip.bin":         "{FIP}",
		"ns_bl1u.bin":     "{NS_BL1U}",
		"ns_bl2u.bin":     "{NS_BL2U}",
		"el3_payload.bin": "{EL3_PAYLOAD}",
		"kernel.bin":      "{KERNEL}",
		"initrd.bin":      "{INITRD}",
	} {
		if got := RewriteMacros(literal); got != macro {
			t.Fatalf("RewriteMacros(%q) = %q, want %q", literal, got, macro)
		}
	}
}

func TestLoadBootArgs(t *testing.T) {
	bootArgsPath := path.Join(t.TempDir(), "model_params")
	content := "-C bp.pl011_uart0.out_file=uart0.log\n\n--data cluster0.cpu0=kernel.bin@0x80080000\n"
	if err := os.WriteFile(bootArgsPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	args := LoadBootArgs(bootArgsPath)

	expected := []string{
		"-C bp.pl011_uart0.out_file=uart0.log",
		"",
		"--data cluster0.cpu0={KERNEL}@0x80080000",
	}
	if len(args) != len(expected) {
		t.Fatalf("expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i := range args {
		if args[i] != expected[i] {
			t.Fatalf("arg %d: got %q, want %q", i, args[i], expected[i])
		}
	}
}

func TestLoadBootArgsMissingFile(t *testing.T) {
	if args := LoadBootArgs(path.Join(t.TempDir(), "no_params")); args != nil {
		t.Fatalf("expected nil for a missing side file, got %v", args)
	}
}
