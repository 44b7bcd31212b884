package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source names a credential (the R2 secret key, the Gemini API key) and the
// places it may come from.
type Source struct {
	// Name identifies the credential in error messages.
	Name string
	// Value is the credential written inline in the configuration.
	Value string
	// File is a path to read the credential from, the shape secret mounts
	// take in containers. When set it wins over Value.
	File string
}

// Load resolves the credential, preferring File over Value, and trims
// surrounding whitespace. A blank result is an error naming the credential,
// so a misconfigured worker fails at startup rather than on its first job.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		if src.File != "" {
			return "", fmt.Errorf("%s file %q is empty", name, src.File)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}
