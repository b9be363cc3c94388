package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/patlang/internal/config"
)

// Project is the optional per-directory configuration read from
// patlang.yaml next to the script (or the working directory for the
// REPL).
type Project struct {
	// ModuleRoot anchors import resolution; empty means the current
	// working directory.
	ModuleRoot string `yaml:"module_root"`
	// Prompt overrides the REPL prompt.
	Prompt string `yaml:"prompt"`
}

// LoadProject reads dir/patlang.yaml. A missing or unreadable file
// yields the zero configuration; a malformed file is ignored the same
// way so a stray config never blocks script execution.
func LoadProject(dir string) Project {
	var proj Project
	data, err := os.ReadFile(filepath.Join(dir, config.ProjectFileName))
	if err != nil {
		return proj
	}
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return Project{}
	}
	if proj.ModuleRoot != "" && !filepath.IsAbs(proj.ModuleRoot) {
		proj.ModuleRoot = filepath.Join(dir, proj.ModuleRoot)
	}
	return proj
}
