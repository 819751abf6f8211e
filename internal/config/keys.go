package config

// Well-known environment keys consumed by the pipeline controller. They
// are ordinary environment entries as far as expansion and overlays are
// concerned; only stage assembly gives them meaning.
const (
	// KeyInstallType selects the install strategy. Empty or absent means
	// StrategyDirect.
	KeyInstallType = "INSTALL_TYPE"

	// KeyDepends lists the declared dependency set, space separated.
	KeyDepends = "DEPENDS"

	// KeyMinDepends, when set, lists the pinned lower-bound dependency
	// set installed before the declared one.
	KeyMinDepends = "MIN_DEPENDS"

	// KeyCoverage, when set, enables coverage instrumentation during the
	// script stage and coverage submission in after_success.
	KeyCoverage = "COVERAGE"

	// KeyDocBuild, when set, replaces the test run with a documentation
	// build in the script stage.
	KeyDocBuild = "DOC_BUILD"

	// KeyDocDepends lists the documentation toolchain dependencies.
	KeyDocDepends = "DOC_DEPENDS"

	// KeyDocPatch names a source patch applied before the doc build.
	// Empty means no patch.
	KeyDocPatch = "DOC_PATCH"

	// KeyDocDir is the documentation source directory.
	KeyDocDir = "DOC_DIR"

	// KeyPackage is the import name of the unit under test, handed to the
	// test runner.
	KeyPackage = "PACKAGE"

	// KeyRequirementsFile is the requirements file consumed by the
	// requirements install strategy.
	KeyRequirementsFile = "REQUIREMENTS_FILE"

	// KeyWorkdir is set by the engine (as an activation effect) when the
	// script stage relocates to a clean working directory.
	KeyWorkdir = "WORKDIR"

	// KeyVirtualEnv is set by the engine once the isolated dependency
	// environment from before_install is active.
	KeyVirtualEnv = "VIRTUAL_ENV"

	// KeyCacheDir points at the shared dependency cache directory.
	KeyCacheDir = "CACHE_DIR"
)
