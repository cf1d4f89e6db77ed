// Package registry holds the static lookup table mapping symbolic FVP model
// identifiers to the location of the simulator binary inside the model
// container images.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trustedfirmware/lavagen/util"
)

// ErrUnknownModel is reported when a model identifier is not in the registry.
var ErrUnknownModel = errors.New("unknown model")

// ModelEntry describes where a simulator binary lives for one model.
type ModelEntry struct {
	// ID is the symbolic model identifier used by job configurations.
	ID string
	// Name is the model container image name (without registry prefix).
	Name string
	// Dir is the installation directory of the model package.
	Dir string
	// Bin is the simulator executable name.
	Bin string
}

// IncompleteModelError is reported when a model is known to the registry but
// its descriptor is missing fields. Such entries are placeholders for models
// that are not implemented yet and must never reach rendering.
type IncompleteModelError struct {
	ID     string
	Fields []string
}

func (e *IncompleteModelError) Error() string {
	return fmt.Sprintf("model '%s' has no %s", e.ID, strings.Join(e.Fields, ", no "))
}

// Registry is an immutable model table built once at startup.
type Registry struct {
	entries util.OrderedMap[string, ModelEntry]
}

// New builds a registry from the given entries. Duplicate identifiers abort.
func New(entries []ModelEntry) *Registry {
	m := util.NewOrderedMap[string, ModelEntry]()
	for _, entry := range entries {
		m.Insert(entry.ID, entry)
	}
	return &Registry{entries: m}
}

// Lookup returns the descriptor for `id`. A missing identifier and an entry
// with empty fields are both rejected, as neither can be rendered.
func (r *Registry) Lookup(id string) (ModelEntry, error) {
	entry, ok := r.entries.Lookup(id)
	if !ok {
		return ModelEntry{}, fmt.Errorf("%w '%s'", ErrUnknownModel, id)
	}

	missing := []string{}
	if entry.Name == "" {
		missing = append(missing, "name")
	}
	if entry.Dir == "" {
		missing = append(missing, "directory")
	}
	if entry.Bin == "" {
		missing = append(missing, "binary")
	}
	if len(missing) > 0 {
		return ModelEntry{}, &IncompleteModelError{ID: id, Fields: missing}
	}

	return entry, nil
}

// Entries returns all descriptors ordered by identifier.
func (r *Registry) Entries() []ModelEntry {
	return r.entries.Values()
}

// Builtin returns the registry of models the test lab provides containers
// for. Entries with empty fields are models the lab knows about but cannot
// run yet.
func Builtin() *Registry {
	return New([]ModelEntry{
		{ID: "base-aemv8a", Name: "fvp:fvp_base_revc-2xaemv8a", Dir: "/opt/model/Base_RevC_AEMv8A_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_RevC-2xAEMv8A"},
		{ID: "base-aemva", Name: "fvp:fvp_base_revc-2xaemva", Dir: "/opt/model/Base_RevC_AEMvA_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_RevC-2xAEMvA"},
		{ID: "foundationv8", Name: "fvp:foundationv8", Dir: "/opt/model/Foundation_Platformpkg/models/Linux64_GCC-6.4", Bin: "Foundation_Platform"},
		{ID: "cortex-a32x4", Name: "fvp:fvp_base_cortex-a32x4", Dir: "/opt/model/Base_Cortex-A32x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A32x4"},
		{ID: "cortex-a35x4", Name: "fvp:fvp_base_cortex-a35x4", Dir: "/opt/model/Base_Cortex-A35x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A35x4"},
		{ID: "cortex-a53x4", Name: "fvp:fvp_base_cortex-a53x4", Dir: "/opt/model/Base_Cortex-A53x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A53x4"},
		{ID: "cortex-a55x4", Name: "fvp:fvp_base_cortex-a55x4", Dir: "/opt/model/Base_Cortex-A55x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A55x4"},
		{ID: "cortex-a57x4", Name: "fvp:fvp_base_cortex-a57x4", Dir: "/opt/model/Base_Cortex-A57x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A57x4"},
		{ID: "cortex-a72x4", Name: "fvp:fvp_base_cortex-a72x4", Dir: "/opt/model/Base_Cortex-A72x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A72x4"},
		{ID: "cortex-a73x4", Name: "fvp:fvp_base_cortex-a73x4", Dir: "/opt/model/Base_Cortex-A73x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A73x4"},
		{ID: "cortex-a75x4", Name: "fvp:fvp_base_cortex-a75x4", Dir: "/opt/model/Base_Cortex-A75x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A75x4"},
		{ID: "cortex-a76x4", Name: "fvp:fvp_base_cortex-a76x4", Dir: "/opt/model/Base_Cortex-A76x4_pkg/models/Linux64_GCC-6.4", Bin: "FVP_Base_Cortex-A76x4"},
		// Containers for these models are not available yet.
		{ID: "cortex-a65x4"},
		{ID: "cortex-a65aex4"},
		{ID: "neoverse-e1"},
	})
}
