//go:build !release
// +build !release

package resources

// the development config directory is kept close to hand in the current
// working directory
const configDir = ".testfmtx"

func resourcePath() (string, error) {
	return configDir, nil
}
