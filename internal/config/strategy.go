package config

import "fmt"

// InstallStrategy enumerates how the unit under test is installed. The
// enumeration replaces string comparison at dispatch sites: a typo in a
// configuration file is a load-time error, never a silent no-op branch.
type InstallStrategy string

const (
	// StrategyDirect installs straight from the source tree.
	StrategyDirect InstallStrategy = "direct"
	// StrategyEditable installs in development (editable) mode.
	StrategyEditable InstallStrategy = "editable"
	// StrategySetup runs the package's own build-and-install entry point.
	StrategySetup InstallStrategy = "setup"
	// StrategySdist packages a source distribution and installs it.
	StrategySdist InstallStrategy = "sdist"
	// StrategyWheel packages a built distribution and installs it.
	StrategyWheel InstallStrategy = "wheel"
	// StrategyRequirements installs from a requirements file first, then
	// installs the package directly.
	StrategyRequirements InstallStrategy = "requirements"
)

// ParseInstallStrategy maps a configuration token to its strategy. The
// empty string means direct install. Unknown tokens are a configuration
// error.
func ParseInstallStrategy(token string) (InstallStrategy, error) {
	switch InstallStrategy(token) {
	case "":
		return StrategyDirect, nil
	case StrategyDirect, StrategyEditable, StrategySetup, StrategySdist, StrategyWheel, StrategyRequirements:
		return InstallStrategy(token), nil
	default:
		return "", fmt.Errorf("unknown install strategy %q (valid: direct, editable, setup, sdist, wheel, requirements)", token)
	}
}
