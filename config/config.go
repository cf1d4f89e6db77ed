package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/trustedfirmware/lavagen/log"
	"github.com/trustedfirmware/lavagen/util"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// DefaultDTB is the device tree used when the environment does not select one.
const DefaultDTB = "fvp-base-gicv3-psci.dtb"

// PrimaryEnvironment is the canonical name of the primary CI lab. Skip rules
// may reference it to exempt models only outside that lab.
const PrimaryEnvironment = "primary"

const configFileName = "config.yaml"

// SkipRule suppresses job generation for one model, optionally only outside
// a given environment. The historical use is a model whose dual-port
// networking requirement the downstream lab cannot satisfy.
type SkipRule struct {
	Model             string `yaml:"model"`
	UnlessEnvironment string `yaml:"unless_environment"`
}

// Matches reports whether generation for `model` must be skipped in `environment`.
func (r SkipRule) Matches(model, environment string) bool {
	if r.Model != model {
		return false
	}
	return r.UnlessEnvironment == "" || r.UnlessEnvironment != environment
}

// Config carries all environment-provided settings, enumerated once at the
// boundary and threaded explicitly through the pipeline.
type Config struct {
	// CI is true when running under the CI server (a base URL is known).
	CI          bool
	CIBase      string
	JobName     string
	BuildNumber string

	WorkspaceRoot  string
	Environment    string
	DockerRegistry string
	LicensePath    string
	DTB            string
	ArchiveDir     string

	SkipRules []SkipRule
}

type fileConfig struct {
	SkipRules []SkipRule `yaml:"skip_rules"`
}

// defaultSkipRules applies when no config file overrides them. The Foundation
// model needs a second network port that only the primary lab provides.
var defaultSkipRules = []SkipRule{
	{Model: "foundationv8", UnlessEnvironment: PrimaryEnvironment},
}

// FromEnvironment builds the configuration from the CI environment and the
// optional config file.
func FromEnvironment() Config {
	v := viper.New()
	v.SetDefault("dtb", DefaultDTB)
	v.SetDefault("environment", "local")
	v.BindEnv("ci_base", "JENKINS_URL")
	v.BindEnv("job_name", "JOB_NAME")
	v.BindEnv("build_number", "BUILD_NUMBER")
	v.BindEnv("workspace", "WORKSPACE")
	v.BindEnv("environment", "LAVAGEN_ENVIRONMENT")
	v.BindEnv("docker_registry", "MODEL_DOCKER_REGISTRY")
	v.BindEnv("license_path", "FVP_LICENSE_PATH")
	v.BindEnv("dtb", "FVP_DTB")
	v.BindEnv("archive_dir", "ARCHIVE_DIR")

	cfg := Config{
		CIBase:         strings.TrimSuffix(v.GetString("ci_base"), "/"),
		JobName:        v.GetString("job_name"),
		BuildNumber:    v.GetString("build_number"),
		WorkspaceRoot:  v.GetString("workspace"),
		Environment:    v.GetString("environment"),
		DockerRegistry: NormalizeRegistry(v.GetString("docker_registry")),
		LicensePath:    v.GetString("license_path"),
		DTB:            v.GetString("dtb"),
		ArchiveDir:     v.GetString("archive_dir"),
	}
	cfg.CI = cfg.CIBase != ""
	if cfg.WorkspaceRoot == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			log.Fatal("Failed to determine working directory: %s.\n", err)
		}
		cfg.WorkspaceRoot = workingDir
	}

	cfg.SkipRules = loadSkipRules()

	log.Debug("Running with configuration: %+v\n", cfg)
	return cfg
}

// NormalizeRegistry ensures a non-empty registry prefix carries exactly one
// trailing slash, so image names can be appended directly.
func NormalizeRegistry(registry string) string {
	if registry == "" {
		return ""
	}
	return strings.TrimRight(registry, "/") + "/"
}

func getConfigDir() (string, error) {
	if configDir, ok := os.LookupEnv("LAVAGEN_CONFIG_DIR"); ok {
		return configDir, nil
	}

	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return path.Join(xdgConfigHome, "lavagen"), nil
	}

	if homeDir, ok := os.LookupEnv("HOME"); ok {
		return path.Join(homeDir, ".config", "lavagen"), nil
	}

	return "", fmt.Errorf("unable to locate the configuration directory")
}

func loadSkipRules() []SkipRule {
	configDir, err := getConfigDir()
	if err != nil {
		log.Debug("Unable to find the lavagen config directory. Using default skip rules.\n")
		return defaultSkipRules
	}

	configFilePath := path.Join(configDir, configFileName)
	if !util.FileExists(configFilePath) {
		log.Debug("No configuration file at `%s`. Using default skip rules.\n", configFilePath)
		return defaultSkipRules
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(util.ReadFile(configFilePath), &fileCfg); err != nil {
		log.Warning("Error reading configuration file at `%s`: `%s`. Using default skip rules.\n", configFilePath, err)
		return defaultSkipRules
	}

	log.Debug("Loaded %d skip rules from `%s`.\n", len(fileCfg.SkipRules), configFilePath)
	return fileCfg.SkipRules
}
