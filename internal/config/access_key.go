package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	// AccessKeyEnvVar is the environment variable consulted when no key is
	// configured explicitly.
	AccessKeyEnvVar = "ISBNDB_ACCESS_KEY"

	// AccessKeyFileName is the dotfile searched for as the last fallback.
	AccessKeyFileName = ".isbndb"
)

// ErrNoAccessKey indicates no access key could be resolved from any source.
// This is a caller-setup defect, not a data condition.
var ErrNoAccessKey = errors.New("no access key provided")

// ResolveAccessKey returns the first non-empty access key found, in priority
// order: the explicitly configured value, the ISBNDB_ACCESS_KEY environment
// variable, then a .isbndb key file in the current directory, the user's home
// directory, or a directory literally named "~". Key file contents are
// stripped of all whitespace.
func ResolveAccessKey(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if key := os.Getenv(AccessKeyEnvVar); key != "" {
		return key, nil
	}
	for _, dir := range keyFileDirs() {
		data, err := os.ReadFile(filepath.Join(dir, AccessKeyFileName))
		if err != nil {
			continue
		}
		if key := strings.Join(strings.Fields(string(data)), ""); key != "" {
			return key, nil
		}
	}
	return "", ErrNoAccessKey
}

func keyFileDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	}
	return append(dirs, "~")
}
