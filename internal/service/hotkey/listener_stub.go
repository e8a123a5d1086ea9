//go:build !windows

package hotkey

import "errors"

func newPlatformListener(_ Chord) (platformListener, error) {
	return nil, errors.New("hotkey: global listener unavailable on this platform")
}
