package proteomics

import (
	"slices"
	"strings"
)

// DefaultGroups are the sample groups of the standard saline/cocaine design.
var DefaultGroups = []string{
	"CTRL_Saline",
	"CTRL_Cocaine",
	"ABX_Saline",
	"ABX_Cocaine",
}

// Registry is the ordered, duplicate-free list of sample group names. The
// order of the list is the order of the exported sheets.
type Registry struct {
	groups []string
}

func NewRegistry(groups ...string) *Registry {
	var registry = &Registry{}
	for _, name := range groups {
		_ = registry.Add(name)
	}
	return registry
}

// Add trims name and appends it. Blank and already registered names are
// rejected and leave the registry untouched.
func (registry *Registry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	if slices.Contains(registry.groups, name) {
		return ErrDuplicateName
	}
	registry.groups = append(registry.groups, name)
	return nil
}

// Remove drops the first exact match of name and reports whether one was
// found. Removing an absent name is a no-op.
func (registry *Registry) Remove(name string) bool {
	var i = slices.Index(registry.groups, name)
	if i < 0 {
		return false
	}
	registry.groups = slices.Delete(registry.groups, i, i+1)
	return true
}

// LoadDefaults replaces every registered group with DefaultGroups.
func (registry *Registry) LoadDefaults() {
	registry.groups = slices.Clone(DefaultGroups)
}

func (registry *Registry) Groups() []string {
	return slices.Clone(registry.groups)
}

func (registry *Registry) Len() int {
	return len(registry.groups)
}

// CanProcess reports whether an export may be started.
func CanProcess(datasetPresent bool, groupCount int) bool {
	return datasetPresent && groupCount > 0
}
