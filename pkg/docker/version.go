package docker

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/fivetwenty-io/docker-client/internal/constants"
)

// Version is the current library version.
const Version = "0.3.0"

// APIVersion is the engine API version requests are pinned to by default.
const APIVersion = constants.DefaultAPIVersion

// APIVersionRange is the range of engine API versions whose responses the
// schemas in this package decode.
const APIVersionRange = ">= " + constants.MinimumAPIVersion

// ParseAPIVersion parses an engine API version such as "1.26" or "v1.41".
// The returned string is the canonical "major.minor" form used in request paths.
func ParseAPIVersion(version string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidAPIVersion)
	}

	parsed, err := semver.NewVersion(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidAPIVersion, version, err)
	}

	if parsed.Patch() != 0 || parsed.Prerelease() != "" {
		return "", fmt.Errorf("%w %q: expected major.minor", ErrInvalidAPIVersion, version)
	}

	return fmt.Sprintf("%d.%d", parsed.Major(), parsed.Minor()), nil
}

// IsCompatible reports whether an engine API version falls inside APIVersionRange.
func IsCompatible(version string) bool {
	canonical, err := ParseAPIVersion(version)
	if err != nil {
		return false
	}

	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		return false
	}

	parsed, err := semver.NewVersion(canonical)
	if err != nil {
		return false
	}

	return constraint.Check(parsed)
}
