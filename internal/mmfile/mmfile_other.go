//go:build !unix

// Package mmfile provides platform-specific helpers for memory-mapping dat
// archives. It is the byte-supplying collaborator: the decoder itself never
// opens or seeks files.
package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
