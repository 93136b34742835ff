package fsutil

// File and directory permission constants used for everything openhooks writes.
const (
	// FileModeDefault is used for installed hook files and the project config (-rw-r--r--).
	FileModeDefault = 0o644
	// FileModeSecure is used for the user settings file (-rw-r-----).
	FileModeSecure = 0o640

	// DirModeDefault is used for the hooks directory (drwxr-xr-x).
	DirModeDefault = 0o755
	// DirModeSecure is used for the user settings directory (drwxr-x---).
	DirModeSecure = 0o750
)
