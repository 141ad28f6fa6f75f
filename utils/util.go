package utils

import (
	"os"
	"path"
)

// ReadyDir ensures the parent directory of filename exists.
// MkdirAll is idempotent, so calling it concurrently is safe.
func ReadyDir(filename string) error {
	dir := path.Dir(filename)
	return os.MkdirAll(dir, os.FileMode(0755))
}

// EnsureDir creates dir if absent.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, os.FileMode(0755))
}

// SaveFile writes data to filename in one shot, creating the parent
// directory when needed. Callers hand it a complete buffer only; a failed
// pipeline never reaches this point, so no partial file is left behind.
func SaveFile(filename string, data []byte) error {
	if err := ReadyDir(filename); err != nil {
		return err
	}
	return os.WriteFile(filename, data, os.FileMode(0644))
}

// Exists returns true if a file exists
func Exists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !os.IsNotExist(err)
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// IsRegular ...
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}

// HasExt reports whether the basename carries a file extension.
func HasExt(fpath string) bool {
	return path.Ext(fpath) != ""
}

// FileSize return file size, return -1 if error
func FileSize(fpath string) int64 {
	if fi, err := os.Stat(fpath); err == nil {
		return fi.Size()
	}
	return -1
}
