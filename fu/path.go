package fu

import (
	"go-ml.dev/pkg/iokit"
	"path/filepath"
)

/*
CachePath resolves relative paths into the go-ml cache directory
*/
func CachePath(kind, s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", kind, s))
}
