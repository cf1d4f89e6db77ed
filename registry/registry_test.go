package registry

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupComplete(t *testing.T) {
	reg := Builtin()

	entry, err := reg.Lookup("cortex-a53x4")
	if err != nil {
		t.Fatalf("lookup failed: %s", err)
	}
	if entry.ID != "cortex-a53x4" {
		t.Fatalf("unexpected id %q", entry.ID)
	}
	if entry.Name != "fvp:fvp_base_cortex-a53x4" {
		t.Fatalf("unexpected name %q", entry.Name)
	}
	if entry.Dir != "/opt/model/Base_Cortex-A53x4_pkg/models/Linux64_GCC-6.4" {
		t.Fatalf("unexpected dir %q", entry.Dir)
	}
	if entry.Bin != "FVP_Base_Cortex-A53x4" {
		t.Fatalf("unexpected bin %q", entry.Bin)
	}
}

func TestLookupUnknown(t *testing.T) {
	reg := Builtin()

	_, err := reg.Lookup("cortex-a99x8")
	if !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("expected ErrUnknownModel, got %v", err)
	}
}

func TestLookupIncomplete(t *testing.T) {
	reg := Builtin()

	_, err := reg.Lookup("neoverse-e1")
	var incomplete *IncompleteModelError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteModelError, got %v", err)
	}
	if len(incomplete.Fields) != 3 {
		t.Fatalf("expected all three fields reported, got %v", incomplete.Fields)
	}
	for _, field := range []string{"name", "directory", "binary"} {
		if !strings.Contains(incomplete.Error(), field) {
			t.Fatalf("error %q does not name field %q", incomplete.Error(), field)
		}
	}
}

func TestLookupPartiallyIncomplete(t *testing.T) {
	reg := New([]ModelEntry{
		{ID: "half-baked", Name: "fvp:half-baked", Dir: "", Bin: "FVP_Half_Baked"},
	})

	_, err := reg.Lookup("half-baked")
	var incomplete *IncompleteModelError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteModelError, got %v", err)
	}
	if len(incomplete.Fields) != 1 || incomplete.Fields[0] != "directory" {
		t.Fatalf("expected only the directory field, got %v", incomplete.Fields)
	}
}

func TestEntriesOrdered(t *testing.T) {
	reg := Builtin()

	entries := reg.Entries()
	if len(entries) == 0 {
		t.Fatal("builtin registry is empty")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID >= entries[i].ID {
			t.Fatalf("entries not ordered: %q before %q", entries[i-1].ID, entries[i].ID)
		}
	}
}
