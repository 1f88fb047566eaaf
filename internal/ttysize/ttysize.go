// Package ttysize reads the terminal geometry of a tty via TIOCGWINSZ, the
// one ioctl call cmd/eis-dump needs from the legacy serial port code's ioctl
// plumbing.
package ttysize

import (
	"unsafe"

	ioctl "github.com/daedaluz/goioctl"
)

const tiocgwinsz = uintptr(0x5413)

// Winsize mirrors the kernel's struct winsize.
type Winsize struct {
	Rows    uint16
	Cols    uint16
	XPixels uint16
	YPixels uint16
}

// Get reads the current window size of the tty backing fd.
func Get(fd uintptr) (Winsize, error) {
	var ws Winsize
	err := ioctl.Ioctl(fd, tiocgwinsz, uintptr(unsafe.Pointer(&ws)))
	return ws, err
}
