// Package vault resolves note names to files within a notes directory.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Vault is a directory tree of plain-text notes.
type Vault struct {
	Root string
}

// NotFoundError reports a note name that matched no file in the vault.
type NotFoundError struct {
	Name string
	Root string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no file named %q in vault %s", e.Name, e.Root)
}

// Find walks the vault for the first file whose base name matches name.
// A name with path separators is resolved relative to the vault root
// instead. Hidden directories are skipped.
func (v *Vault) Find(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		path := filepath.Join(v.Root, filepath.FromSlash(name))
		if _, err := os.Stat(path); err != nil {
			return "", &NotFoundError{Name: name, Root: v.Root}
		}
		return path, nil
	}

	var found string
	err := filepath.Walk(v.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != v.Root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() == name && found == "" {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search vault %s: %w", v.Root, err)
	}
	if found == "" {
		return "", &NotFoundError{Name: name, Root: v.Root}
	}
	return found, nil
}

// LoadStyle reads the writing-style exemplar named in the settings.
// Absence or a read failure is non-fatal: it returns ("", false) and the
// caller degrades to unstyled prompts.
func (v *Vault) LoadStyle(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	path, err := v.Find(name)
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
