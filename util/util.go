package util

import (
	"os"
	"path"

	"github.com/trustedfirmware/lavagen/log"
)

// FileMode is the default FileMode used when creating files.
const FileMode = 0664

// DirMode is the default FileMode used when creating directories.
const DirMode = 0775

// FileExists checks whether some file exists.
func FileExists(file string) bool {
	stat, err := os.Stat(file)
	return err == nil && !stat.IsDir()
}

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

// ReadFile returns the content of `file` and aborts on failure.
func ReadFile(file string) []byte {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatal("Failed to read file '%s': %s.\n", file, err)
	}
	return data
}

// WriteFile writes `data` to `file`, creating parent directories as needed,
// and aborts on failure.
func WriteFile(file string, data []byte) {
	if err := os.MkdirAll(path.Dir(file), DirMode); err != nil {
		log.Fatal("Failed to create directory '%s': %s.\n", path.Dir(file), err)
	}
	if err := os.WriteFile(file, data, FileMode); err != nil {
		log.Fatal("Failed to write file '%s': %s.\n", file, err)
	}
}

// CopyFile copies the content of `src` to `dst`.
func CopyFile(src, dst string) {
	WriteFile(dst, ReadFile(src))
}
