// Package utils holds small filesystem and input helpers shared by the
// config, CLI and server layers.
package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// LoadTOMLFile loads and parses a TOML file into the provided struct
func LoadTOMLFile(path string, v interface{}) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		return err
	}
	return nil
}

// SaveTOMLFile saves a struct to a TOML file
func SaveTOMLFile(data interface{}, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(data)
}

// GetAbsolutePath returns the absolute path of a file
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			return absPath
		}
	}
	return path
}

// GetExecutableDir returns the directory of the running binary
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus reports whether a directory exists and is writable,
// creating it when missing.
func CheckDirStatus(dirPath string) DirCheckResult {
	result := DirCheckResult{}

	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			if mkErr := os.MkdirAll(dirPath, 0755); mkErr != nil {
				result.Error = mkErr
				return result
			}
			result.Exists = true
			result.Writable = testWriteAccess(dirPath)
			return result
		}
		result.Error = err
		return result
	}
	if !info.IsDir() {
		return result
	}
	result.Exists = true
	result.Writable = testWriteAccess(dirPath)
	return result
}

// testWriteAccess probes a directory with a throwaway file.
func testWriteAccess(dirPath string) bool {
	probe := filepath.Join(dirPath, ".write_probe")
	file, err := os.Create(probe)
	if err != nil {
		return false
	}
	file.Close()
	os.Remove(probe)
	return true
}
