//go:build !linux

package internal

// WatchBackKey is a no-op off Linux.
func WatchBackKey(path string) {
	if path != "" {
		GetInternalLogger().Debug("Back key device ignored on this platform", "path", path)
	}
}
