package pep

import _ "embed"

//go:embed pep-0604.rst
var source string

// Raw returns the embedded proposal source, exactly as authored.
func Raw() string {
	return source
}
