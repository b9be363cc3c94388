package utils

import (
	"path/filepath"
	"strings"

	"github.com/funvibe/patlang/internal/config"
)

// ImportPathToFile maps a source-level dotted module name to a file
// path: a.b.c -> a/b/c.lang.
func ImportPathToFile(dotted string) string {
	return strings.ReplaceAll(dotted, ".", "/") + config.SourceFileExt
}

// ResolveImportPath resolves a module file path against a base
// directory; absolute paths pass through.
func ResolveImportPath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ModuleNameFromPath derives a module's name from its file path: the
// basename with the source extension stripped.
func ModuleNameFromPath(path string) string {
	return config.TrimSourceExt(filepath.Base(path))
}
