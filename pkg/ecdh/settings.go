package ecdh

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SettingXCoordinateOnly selects the shared-secret encoding: when true
// (the default) only the x coordinate is returned, applying the
// documented errata for RFC 4753 (errata ID 9); when false the secret
// is the full x || y concatenation the RFC text literally specifies.
//
// This is a genuine interoperability decision, not an implementation
// detail: peers that follow the unpatched RFC expect full-coordinate
// secrets. It therefore stays caller-visible configuration and is read
// from the Settings collaborator each time a secret is computed.
const SettingXCoordinateOnly = "ecdh.ecp_x_coordinate_only"

// Settings is the configuration collaborator consumed by sessions. The
// core does not own configuration storage; it only reads resolved
// values. Implementations must be safe for concurrent readers.
type Settings interface {
	// Bool returns the value for a namespaced boolean key, or def when
	// the key is not set.
	Bool(key string, def bool) bool
}

// MapSettings is an in-memory Settings implementation. The zero value
// answers every lookup with the caller's default.
type MapSettings map[string]bool

// Bool implements Settings.
func (m MapSettings) Bool(key string, def bool) bool {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Defaults returns a Settings that resolves every key to its default.
func Defaults() Settings {
	return MapSettings(nil)
}

// settingsFile is the on-disk TOML shape:
//
//	[ecdh]
//	ecp_x_coordinate_only = false
type settingsFile struct {
	ECDH struct {
		ECPXCoordinateOnly *bool `toml:"ecp_x_coordinate_only"`
	} `toml:"ecdh"`
}

// LoadSettings reads Settings from a TOML file. Keys absent from the
// file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ecdh: read settings: %w", err)
	}
	var f settingsFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("ecdh: parse settings: %w", err)
	}

	m := MapSettings{}
	if f.ECDH.ECPXCoordinateOnly != nil {
		m[SettingXCoordinateOnly] = *f.ECDH.ECPXCoordinateOnly
	}
	return m, nil
}
