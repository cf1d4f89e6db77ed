package artifact

import (
	"errors"
	"os"
	"path"
	"testing"
)

func TestResolveCI(t *testing.T) {
	r := Resolver{
		CI:          true,
		Base:        "https://ci.example.com",
		JobName:     "X",
		BuildNumber: "7",
	}

	url, err := r.URL("kernel.bin", "debug")
	if err != nil {
		t.Fatalf("resolve failed: %s", err)
	}
	expected := "https://ci.example.com/job/X/7/artifact/artefacts/debug/kernel.bin"
	if url != expected {
		t.Fatalf("got %q, want %q", url, expected)
	}
}

func TestResolveLocal(t *testing.T) {
	r := Resolver{
		CI:            false,
		WorkspaceRoot: "/ws",
	}

	url, err := r.URL("kernel.bin", "debug")
	if err != nil {
		t.Fatalf("resolve failed: %s", err)
	}
	expected := "file:///ws/artefacts/debug/kernel.bin"
	if url != expected {
		t.Fatalf("got %q, want %q", url, expected)
	}
}

func TestResolveMissingBuildMode(t *testing.T) {
	r := Resolver{CI: true, Base: "https://ci.example.com"}

	_, err := r.URL("fip.bin", "")
	if !errors.Is(err, ErrMissingBuildMode) {
		t.Fatalf("expected ErrMissingBuildMode, got %v", err)
	}
}

func TestFetchLocalFile(t *testing.T) {
	dir := t.TempDir()
	src := path.Join(dir, "fip.bin")
	if err := os.WriteFile(src, []byte("firmware image package"), 0644); err != nil {
		t.Fatal(err)
	}

	dest := path.Join(dir, "out", "fip.bin")
	if err := Fetch("file://"+src, dest); err != nil {
		t.Fatalf("fetch failed: %s", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "firmware image package" {
		t.Fatalf("unexpected content %q", data)
	}
}
