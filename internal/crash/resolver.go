package crash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath decides the actual report path for a desired target path.
//
// When overwrite is true, or nothing exists at the path, the cleaned path
// is returned unchanged (an existing file will be truncated by the write).
// Otherwise the stem is suffixed with an incrementing counter, "report.log"
// becoming "report (1).log", "report (2).log", and so on until an unused
// name is found in the same directory. There is no upper bound.
//
// The existence check and the later file creation are not atomic, so this
// is racy by construction and unsuitable for concurrent writers.
func ResolvePath(path string, overwrite bool) string {
	path = filepath.Clean(path)
	if overwrite || !exists(path) {
		return path
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
