package romlib

import (
	"strings"
	"testing"
)

const sampleIndex = `# ROM library jump table
rom	rom_lib_init
fdt	fdt_getprop_namelen
fdt	fdt_setprop_inplace	patch

mbedtls	mbedtls_asn1_get_tag
`

func TestParse(t *testing.T) {
	index, err := Parse(sampleIndex)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	entries := index.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0] != (Entry{Library: "rom", Function: "rom_lib_init"}) {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if !entries[2].Patch {
		t.Fatal("existing patch attribute lost")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("fdt\n"); err == nil {
		t.Fatal("expected error for entry without a function")
	}
	if _, err := Parse("fdt fdt_getprop hotfix\n"); err == nil {
		t.Fatal("expected error for unknown attribute")
	}
}

func TestPatchFunctions(t *testing.T) {
	index, err := Parse(sampleIndex)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if err := index.PatchFunctions([]string{"fdt_getprop_namelen"}); err != nil {
		t.Fatalf("patch failed: %s", err)
	}

	entries := index.Entries()
	if !entries[1].Patch {
		t.Fatal("function not marked as patched")
	}
	if entries[0].Patch || entries[3].Patch {
		t.Fatal("unrelated entries were patched")
	}
}

func TestPatchUnknownFunction(t *testing.T) {
	index, err := Parse(sampleIndex)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if err := index.PatchFunctions([]string{"no_such_function"}); err == nil {
		t.Fatal("expected error for unknown function")
	}
}

func TestPatchIdempotent(t *testing.T) {
	index, err := Parse(sampleIndex)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if err := index.PatchFunctions([]string{"fdt_setprop_inplace"}); err != nil {
		t.Fatalf("patch failed: %s", err)
	}
	if !index.Entries()[2].Patch {
		t.Fatal("already-patched entry must stay patched")
	}
}

func TestStringRoundTrip(t *testing.T) {
	index, err := Parse(sampleIndex)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	out := index.String()
	if !strings.HasPrefix(out, "# ROM library jump table\n") {
		t.Fatal("comment line not preserved")
	}
	if !strings.Contains(out, "\n\n") {
		t.Fatal("blank line not preserved")
	}

	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse failed: %s", err)
	}
	a, b := index.Entries(), reparsed.Entries()
	if len(a) != len(b) {
		t.Fatal("entry count changed across round trip")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d changed across round trip", i)
		}
	}
}
