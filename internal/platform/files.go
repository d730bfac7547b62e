package platform

import "os"

// Directory permissions for created output directories
const DefaultDirPermissions = 0755

// EnsureDir creates the directory if it doesn't exist
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
