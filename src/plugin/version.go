package plugin

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// EngineVersion is the semantic version of the rewrite engine.
const EngineVersion = "0.2.0"

// Version returns the current version of the gopher-estree engine
func Version() string {
	return EngineVersion
}

// CheckEngineVersion verifies that the running engine satisfies the
// minimum version a plugin config demands. An empty constraint always
// passes.
func CheckEngineVersion(minVersion string) error {
	if minVersion == "" {
		return nil
	}

	min, err := goversion.NewVersion(minVersion)
	if err != nil {
		return fmt.Errorf("invalid minEngineVersion %q: %w", minVersion, err)
	}

	current, err := goversion.NewVersion(EngineVersion)
	if err != nil {
		return fmt.Errorf("invalid engine version %q: %w", EngineVersion, err)
	}

	if current.LessThan(min) {
		return fmt.Errorf("engine version %s is older than required %s", EngineVersion, minVersion)
	}

	return nil
}
