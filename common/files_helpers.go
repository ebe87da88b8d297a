// common/files_helpers.go

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsEmptyString reports whether s is empty or only whitespace
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FileExists checks if a file exists
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists ensures the specified directory exists
func EnsureDirectoryExists(path string) error {
	if IsEmptyString(path) {
		return fmt.Errorf("path cannot be empty")
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}

	if os.IsNotExist(err) {
		if err = os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", path, err)
		}
		return nil
	}

	return fmt.Errorf("failed to check existence of directory '%s': %w", path, err)
}

// IsDirWritable checks if a directory is writable by attempting to create a temporary file
func IsDirWritable(dirPath string) error {
	if !DirectoryExists(dirPath) {
		return fmt.Errorf("directory does not exist: %s", dirPath)
	}

	tempFile := filepath.Join(dirPath, ".write_test")
	f, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create test file in directory '%s': %w", dirPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close test file in directory '%s': %w", dirPath, err)
	}
	if err := os.Remove(tempFile); err != nil {
		return fmt.Errorf("failed to remove test file in directory '%s': %w", dirPath, err)
	}
	return nil
}

// AppDataDir returns <user config dir>/HelloWorld, or "" if the platform has none.
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// LocateAppFile decides where an application file lives. Lookup order:
//  1. fileName in the working directory, if it already exists there
//  2. appDataDir/subDir/fileName, if it exists or its directory can be created and written
//  3. fileName in the working directory as fallback
//
// The boolean result reports whether the returned file already exists.
func LocateAppFile(appDataDir, subDir, fileName string) (string, bool) {
	rootPath := fileName
	if FileExists(rootPath) {
		return rootPath, true
	}

	if appDataDir != "" {
		dir := filepath.Join(appDataDir, subDir)
		path := filepath.Join(dir, fileName)
		if FileExists(path) {
			return path, true
		}
		err := EnsureDirectoryExists(dir)
		if err == nil {
			err = IsDirWritable(dir)
		}
		if err == nil {
			return path, false
		}
		CaptureEarlyLog(SeverityWarning, "Cannot use application data directory '%s': %v", dir, err)
	}

	return rootPath, false
}
