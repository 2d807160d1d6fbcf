package settings

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the format version written to new databases and records.
const Version = "v1.0.0"

// IsCompatibleVersion reports whether data written at version stored can be
// read by a store at version current. Major versions must match; minor and
// patch may differ.
func IsCompatibleVersion(stored, current string) (bool, error) {
	if !semver.IsValid(stored) {
		return false, fmt.Errorf("invalid stored version: %q", stored)
	}
	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid current version: %q", current)
	}
	return semver.Major(stored) == semver.Major(current), nil
}

func checkVersion(stored string) error {
	ok, err := IsCompatibleVersion(stored, Version)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIncompatibleVersion, err)
	}
	if !ok {
		return fmt.Errorf("%w: found %s, need %s.x.x", ErrIncompatibleVersion, stored, semver.Major(Version))
	}
	return nil
}
