// Package fileutils provides the path helpers used by the input and output
// stages.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PermissionDirectory is the mode of directories created for output files.
const PermissionDirectory = 0750

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory and its parents if needed.
func EnsureDirectoryExists(dirPath string) error {
	if DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// EnsureParentDirectory creates the directory that will hold filePath.
func EnsureParentDirectory(filePath string) error {
	return EnsureDirectoryExists(filepath.Dir(filePath))
}

// EnsureExtension appends ext unless filePath already ends with it,
// compared case-insensitively.
func EnsureExtension(filePath, ext string) string {
	if strings.HasSuffix(strings.ToLower(filePath), strings.ToLower(ext)) {
		return filePath
	}
	return filePath + ext
}

// RequireFile returns an error unless filePath is an existing regular file.
func RequireFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("no file given")
	}
	if !FileExists(filePath) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	return nil
}
