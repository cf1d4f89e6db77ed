package cmd

import (
	"os"
	"path"

	"github.com/trustedfirmware/lavagen/artifact"
	"github.com/trustedfirmware/lavagen/config"
	"github.com/trustedfirmware/lavagen/gitinfo"
	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/registry"
	"github.com/trustedfirmware/lavagen/render"
	"github.com/trustedfirmware/lavagen/util"

	"github.com/spf13/cobra"
)

// defaultVersionRegex matches the firmware version banner on the model's
// console, used by the lab to confirm the right build booted.
const defaultVersionRegex = `v[0-9]+\.[0-9]+(\.[0-9]+)?`

var generateCmd = &cobra.Command{
	Use:   "generate model [model...]",
	Args:  cobra.MinimumNArgs(1),
	Short: "Generates LAVA job descriptions for FVP models",
	Long: `Generates LAVA job descriptions for FVP models. For each model, the
simulator binary is looked up in the model registry, artifact URLs are
resolved for the current build, and the job template is rendered with the
simulator parameters injected. A failure for one model does not stop the
remaining models.`,
	Run: runGenerate,
}

var generateTemplate string
var generateBootArgs string
var generateBuildMode string
var generateOutputDir string

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "fvp_template.yaml", "Job template file")
	generateCmd.Flags().StringVar(&generateBootArgs, "boot-args", "model_params", "Side file with simulator command-line parameters")
	generateCmd.Flags().StringVarP(&generateBuildMode, "build-mode", "m", "", "Build mode of the artifacts (e.g. debug, release)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "output", "Directory for the generated job files")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := config.FromEnvironment()
	reg := registry.Builtin()
	resolver := artifact.NewResolver(cfg)

	info, err := gitinfo.Describe(cfg.WorkspaceRoot)
	if err != nil {
		log.Warning("Failed to inspect the workspace git state: %s.\n", err)
	} else if info.Hash != "" {
		suffix := ""
		if info.Dirty {
			suffix = " with uncommitted changes"
		}
		log.Debug("Workspace is at commit %s%s.\n", info.Hash, suffix)
	}

	for _, modelID := range args {
		log.IndentationLevel = 0
		log.Log("\nGenerating job description for model '%s'.\n", modelID)
		log.IndentationLevel = 1

		entry, err := reg.Lookup(modelID)
		if err != nil {
			log.Error("%s.\n", err)
			continue
		}

		bindings, err := buildBindings(cfg, entry, resolver, generateBuildMode)
		if err != nil {
			// A missing build mode is a configuration error for the whole
			// invocation, not a per-model condition.
			log.Fatal("%s.\n", err)
		}

		generated, err := render.Generate(render.Params{
			Model:        entry,
			TemplatePath: generateTemplate,
			BootArgsPath: generateBootArgs,
			OutputDir:    generateOutputDir,
			ArchiveDir:   cfg.ArchiveDir,
			Environment:  cfg.Environment,
			SkipRules:    cfg.SkipRules,
			Bindings:     bindings,
		})
		if err != nil {
			log.Error("%s.\n", err)
			continue
		}
		if generated {
			log.Success("Job description written to '%s'.\n", path.Join(generateOutputDir, modelID+".yaml"))
		} else {
			log.Log("Nothing to generate.\n")
		}
	}

	log.IndentationLevel = 0
	log.Log("\n")
	if log.ErrorOccured() {
		log.Error("Some job descriptions could not be generated.\n")
		os.Exit(1)
	}
	log.Success("Done.\n")
}

// artifactTokens maps URL placeholder tokens to the artifact filenames they
// resolve from.
var artifactTokens = map[string]string{
	render.TokenBL1URL:        "bl1.bin",
	render.TokenFIPURL:        "fip.bin",
	render.TokenNSBL1UURL:     "ns_bl1u.bin",
	render.TokenNSBL2UURL:     "ns_bl2u.bin",
	render.TokenEL3PayloadURL: "el3_payload.bin",
	render.TokenKernelURL:     "kernel.bin",
	render.TokenInitrdURL:     "initrd.bin",
}

// optionalArtifactTokens are images a build may legitimately not produce.
var optionalArtifactTokens = map[string]bool{
	render.TokenNSBL1UURL:     true,
	render.TokenNSBL2UURL:     true,
	render.TokenEL3PayloadURL: true,
	render.TokenInitrdURL:     true,
}

func buildBindings(cfg config.Config, entry registry.ModelEntry, resolver artifact.Resolver, buildMode string) (render.Bindings, error) {
	bindings := render.Bindings{
		render.TokenLicenseFile:   cfg.LicensePath,
		render.TokenDockerImage:   cfg.DockerRegistry + entry.Name,
		render.TokenModelName:     entry.ID,
		render.TokenModelDir:      entry.Dir,
		render.TokenModelBin:      entry.Bin,
		render.TokenBootImageDir:  path.Join("artefacts", buildMode),
		render.TokenBootImageBin:  "kernel.bin",
		render.TokenVersionString: defaultVersionRegex,
	}

	for token, filename := range artifactTokens {
		// Locally, optional images are only bound when the build actually
		// produced them; the renderer substitutes the bare filename
		// otherwise.
		if optionalArtifactTokens[token] && !cfg.CI &&
			!util.FileExists(path.Join(cfg.WorkspaceRoot, "artefacts", buildMode, filename)) {
			continue
		}
		url, err := resolver.URL(filename, buildMode)
		if err != nil {
			return nil, err
		}
		bindings[token] = url
	}

	url, err := resolver.URL(cfg.DTB, buildMode)
	if err != nil {
		return nil, err
	}
	bindings[render.TokenDTBURL] = url

	bindings.ApplyDefaults()
	return bindings, nil
}
