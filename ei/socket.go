package ei

import (
	"os"
	"path/filepath"
)

// SocketPath resolves the EIS socket path per spec §6: LIBEI_SOCKET
// overrides everything, naming either an absolute path or a path relative
// to $XDG_RUNTIME_DIR; otherwise $XDG_RUNTIME_DIR/eis-0.
func SocketPath() string {
	if p := os.Getenv("LIBEI_SOCKET"); p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), p)
	}
	return filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), "eis-0")
}
