package render

import (
	"path"

	"github.com/trustedfirmware/lavagen/config"
	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/registry"
	"github.com/trustedfirmware/lavagen/util"
)

// JobFileName is the duplicate job description expected by the lab
// dispatcher next to the per-model file.
const JobFileName = "job.yaml"

// Params collects everything one job generation needs.
type Params struct {
	Model        registry.ModelEntry
	TemplatePath string
	BootArgsPath string
	OutputDir    string
	ArchiveDir   string
	Environment  string
	SkipRules    []config.SkipRule
	Bindings     Bindings
}

// Generate renders the job description for one platform and writes the
// per-model YAML, the duplicate job file, and the archive copy. The first
// return value is false when generation was skipped (no template, or the
// model is denylisted in this environment).
func Generate(p Params) (bool, error) {
	for _, rule := range p.SkipRules {
		if rule.Matches(p.Model.ID, p.Environment) {
			log.Debug("Model '%s' is denylisted in environment '%s'. Skipping job generation.\n",
				p.Model.ID, p.Environment)
			return false, nil
		}
	}

	doc, ok, err := Render(p.TemplatePath, p.Bindings)
	if err != nil {
		return false, err
	}
	if !ok {
		log.Debug("No template at '%s'. Platform opted out of job generation.\n", p.TemplatePath)
		return false, nil
	}

	doc = Inject(doc, LoadBootArgs(p.BootArgsPath), BootArgsMarker)

	outputPath := path.Join(p.OutputDir, p.Model.ID+".yaml")
	util.WriteFile(outputPath, []byte(doc))
	util.WriteFile(path.Join(p.OutputDir, JobFileName), []byte(doc))

	if p.ArchiveDir != "" {
		util.CopyFile(outputPath, path.Join(p.ArchiveDir, p.Model.ID+".yaml"))
	}

	return true, nil
}
