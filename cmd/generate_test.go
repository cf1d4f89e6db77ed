package cmd

import (
	"errors"
	"testing"

	"github.com/trustedfirmware/lavagen/artifact"
	"github.com/trustedfirmware/lavagen/config"
	"github.com/trustedfirmware/lavagen/registry"
	"github.com/trustedfirmware/lavagen/render"
)

func testEntry() registry.ModelEntry {
	return registry.ModelEntry{
		ID:   "cortex-a53x4",
		Name: "fvp:fvp_base_cortex-a53x4",
		Dir:  "/opt/model/Base_Cortex-A53x4_pkg/models/Linux64_GCC-6.4",
		Bin:  "FVP_Base_Cortex-A53x4",
	}
}

func TestBuildBindingsCI(t *testing.T) {
	cfg := config.Config{
		CI:             true,
		CIBase:         "https://ci.example.com",
		JobName:        "tf-worker",
		BuildNumber:    "11",
		DockerRegistry: "registry.example.com/",
		LicensePath:    "/opt/arm/license.lic",
		DTB:            config.DefaultDTB,
	}

	bindings, err := buildBindings(cfg, testEntry(), artifact.NewResolver(cfg), "release")
	if err != nil {
		t.Fatalf("buildBindings failed: %s", err)
	}

	expected := "https://ci.example.com/job/tf-worker/11/artifact/artefacts/release/bl1.bin"
	if bindings[render.TokenBL1URL] != expected {
		t.Fatalf("got %q, want %q", bindings[render.TokenBL1URL], expected)
	}
	if bindings[render.TokenDockerImage] != "registry.example.com/fvp:fvp_base_cortex-a53x4" {
		t.Fatalf("unexpected docker image %q", bindings[render.TokenDockerImage])
	}
	if bindings[render.TokenDTBURL] != "https://ci.example.com/job/tf-worker/11/artifact/artefacts/release/"+config.DefaultDTB {
		t.Fatalf("unexpected dtb url %q", bindings[render.TokenDTBURL])
	}
	for _, token := range []string{render.TokenModelName, render.TokenModelDir, render.TokenModelBin} {
		if bindings[token] == "" {
			t.Fatalf("required binding %s is empty", token)
		}
	}
}

func TestBuildBindingsMissingBuildMode(t *testing.T) {
	cfg := config.Config{CI: true, CIBase: "https://ci.example.com"}

	_, err := buildBindings(cfg, testEntry(), artifact.NewResolver(cfg), "")
	if !errors.Is(err, artifact.ErrMissingBuildMode) {
		t.Fatalf("expected ErrMissingBuildMode, got %v", err)
	}
}

func TestBuildBindingsLocalOptionalDefaults(t *testing.T) {
	cfg := config.Config{
		CI:            false,
		WorkspaceRoot: t.TempDir(),
		DTB:           config.DefaultDTB,
	}

	bindings, err := buildBindings(cfg, testEntry(), artifact.NewResolver(cfg), "debug")
	if err != nil {
		t.Fatalf("buildBindings failed: %s", err)
	}

	// The local workspace holds no optional images, so their bindings fall
	// back to the symbolic filenames.
	if bindings[render.TokenNSBL1UURL] != "ns_bl1u.bin" {
		t.Fatalf("unexpected ns_bl1u binding %q", bindings[render.TokenNSBL1UURL])
	}
	if bindings[render.TokenEL3PayloadURL] != "el3_payload.bin" {
		t.Fatalf("unexpected el3_payload binding %q", bindings[render.TokenEL3PayloadURL])
	}

	expected := "file://" + cfg.WorkspaceRoot + "/artefacts/debug/bl1.bin"
	if bindings[render.TokenBL1URL] != expected {
		t.Fatalf("got %q, want %q", bindings[render.TokenBL1URL], expected)
	}
}
