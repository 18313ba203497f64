package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// catalogFileName is the optional overlay file in the config directory.
const catalogFileName = "catalog.yaml"

// catalogYAML is the on-disk shape of the overlay file.
type catalogYAML struct {
	Endpoints []APIEndpoint `yaml:"endpoints"`
}

// loadCatalog returns the built-in catalog overlaid with catalog.yaml from
// configDir when present. User entries with the same name override the
// built-in entry field-by-field; new names are appended.
func loadCatalog(configDir string) ([]APIEndpoint, error) {
	catalog := BuiltinCatalog()
	if configDir == "" {
		return catalog, nil
	}

	path := filepath.Join(configDir, catalogFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return catalog, nil
	}
	if err != nil {
		return nil, NewLoadError(catalogFileName, err)
	}

	var overlay catalogYAML
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, NewLoadError(catalogFileName, err)
	}

	return mergeCatalog(catalog, overlay.Endpoints)
}

// mergeCatalog overlays user entries on the built-in list. Matching is by
// Name; within a match, non-zero user fields win.
func mergeCatalog(builtin, user []APIEndpoint) ([]APIEndpoint, error) {
	byName := make(map[string]int, len(builtin))
	merged := make([]APIEndpoint, len(builtin))
	copy(merged, builtin)
	for i, e := range merged {
		byName[e.Name] = i
	}

	for _, u := range user {
		if u.Name == "" {
			return nil, NewValidationError("endpoint", "(unnamed)", "name", fmt.Errorf("%w: name is required", ErrInvalidValue))
		}
		if i, ok := byName[u.Name]; ok {
			base := merged[i]
			if err := mergo.Merge(&u, base); err != nil {
				return nil, fmt.Errorf("merge endpoint %q: %w", u.Name, err)
			}
			merged[i] = u
			continue
		}
		byName[u.Name] = len(merged)
		merged = append(merged, u)
	}
	return merged, nil
}

// validateCatalog rejects malformed catalog entries at startup.
func validateCatalog(catalog []APIEndpoint) error {
	if len(catalog) == 0 {
		return NewValidationError("endpoint", "catalog", "", fmt.Errorf("%w: catalog is empty", ErrInvalidValue))
	}
	for _, e := range catalog {
		if e.Name == "" {
			return NewValidationError("endpoint", "(unnamed)", "name", fmt.Errorf("%w: name is required", ErrInvalidValue))
		}
		u, err := url.Parse(e.URL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return NewValidationError("endpoint", e.Name, "url", fmt.Errorf("%w: must be an absolute http(s) URL: %q", ErrInvalidValue, e.URL))
		}
		if !e.AuthType.IsValid() {
			return NewValidationError("endpoint", e.Name, "auth_type", fmt.Errorf("%w: %q", ErrInvalidValue, e.AuthType))
		}
		if e.Reliability < 0 || e.Reliability > 1 {
			return NewValidationError("endpoint", e.Name, "reliability", fmt.Errorf("%w: must be in [0, 1], got %g", ErrInvalidValue, e.Reliability))
		}
		for _, alt := range e.EndpointPatterns {
			au, err := url.Parse(alt)
			if err != nil || au.Host == "" {
				return NewValidationError("endpoint", e.Name, "endpoint_patterns", fmt.Errorf("%w: malformed alternate %q", ErrInvalidValue, alt))
			}
		}
	}
	return nil
}
