//go:build linux

package internal

import (
	evdev "github.com/holoplot/go-evdev"
)

// WatchBackKey forwards KEY_BACK and KEY_ESC presses from a raw input device
// into the SDL event queue. Handhelds often expose their back button only
// through evdev. An empty path disables the watcher.
func WatchBackKey(path string) {
	if path == "" {
		return
	}

	dev, err := evdev.Open(path)
	if err != nil {
		GetInternalLogger().Warn("Failed to open back key device", "path", path, "error", err)
		return
	}

	go func() {
		defer dev.Close()
		for {
			ev, err := dev.ReadOne()
			if err != nil {
				GetInternalLogger().Debug("Back key watcher stopped", "error", err)
				return
			}
			if ev.Type != evdev.EV_KEY || ev.Value != 1 {
				continue
			}
			if ev.Code == evdev.KEY_BACK || ev.Code == evdev.KEY_ESC {
				PostBack()
			}
		}
	}()
}
