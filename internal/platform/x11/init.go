//go:build linux

package x11

import "github.com/mj1618/zwm/internal/platform"

func init() {
	platform.OpenFunc = func() (platform.Display, error) {
		return Open()
	}
}
