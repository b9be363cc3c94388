package config

// Version is the current patlang version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.1.0"

const SourceFileExt = ".lang"

// TrimSourceExt removes the source extension from a filename.
// Returns the original string if the extension does not match.
func TrimSourceExt(name string) string {
	if len(name) >= len(SourceFileExt) && name[len(name)-len(SourceFileExt):] == SourceFileExt {
		return name[:len(name)-len(SourceFileExt)]
	}
	return name
}

// HasSourceExt returns true if the path ends with the source extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceFileExt) && path[len(path)-len(SourceFileExt):] == SourceFileExt
}

// ProjectFileName is the optional per-directory project configuration file
// read by the CLI at startup.
const ProjectFileName = "patlang.yaml"

// Built-in function names
const (
	PrintFuncName   = "print"
	PrintlnFuncName = "println"
	InputFuncName   = "input"
	AssertFuncName  = "assert"
	TypeOfFuncName  = "type_of"
	TypeFuncName    = "type"
	LenFuncName     = "len"
)

// PatternNameBinding is defined in every pattern's method environment and
// holds the pattern's declared name.
const PatternNameBinding = "__name__"
