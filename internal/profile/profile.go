// Package profile reads the named profiles from the ecl user database.
// Profiles are the only runtime data the completion grammar references
// outside itself: wherever a definition expects a profile, every stored
// profile name is a candidate.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
)

// Profile is a stored ecl profile. Only the name matters for completion.
type Profile struct {
	Name string `json:"name"`
}

// database mirrors the layout of the ecl user database: records are grouped
// by type, and each type holds a map of records keyed by internal id.
type database struct {
	Profile map[string]Profile `json:"Profile"`
}

// Load reads all profiles from the user database at path. A missing or
// structurally mismatched database is an error; completion cannot run
// without knowing the defined profiles.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading database: %w", err)
	}

	var db database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("profile: decoding database: %w", err)
	}
	if db.Profile == nil {
		return nil, fmt.Errorf("profile: database %s has no Profile table", path)
	}

	return lo.Values(db.Profile), nil
}

// Names returns the names of the given profiles, in input order.
func Names(profiles []Profile) []string {
	return lo.Map(profiles, func(p Profile, _ int) string {
		return p.Name
	})
}
