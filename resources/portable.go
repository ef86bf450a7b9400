package resources

import (
	"os"
	"path/filepath"
)

const portablePath = "TestFMTX_UserData"

// the portable marker file lives alongside the program binary, not in the
// working directory
func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	pth := filepath.Join(filepath.Dir(exe), "portable.txt")
	_, err = os.Stat(pth)
	return err == nil
}
