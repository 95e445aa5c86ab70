package naming

import "strings"

// SplitExt splits name into stem and extension. The extension starts at the
// last dot, but only when that dot is neither the first nor the last
// character: ".bashrc" and "notes." have no extension, "archive.tar.gz"
// has ".gz".
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}
