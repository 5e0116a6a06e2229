package defs

// Template placeholder tokens. When rewriting the build descriptor the
// qualified token must be replaced before the bare token, otherwise the
// qualified occurrences are double-substituted.
const (
	// QualifiedPlaceholder is the fully-qualified module id placeholder in
	// the template's build descriptor.
	QualifiedPlaceholder = "com.roshni.games.game.GAME_ID"

	// BarePlaceholder is the unqualified module id placeholder.
	BarePlaceholder = "GAME_ID"

	// PackagePrefix is the namespace all game modules live under.
	PackagePrefix = "com.roshni.games.game"

	// TemplatePackageDecl is the exact package declaration line carried by
	// every template Kotlin source file.
	TemplatePackageDecl = "package com.roshni.games.game.template"

	// TypeToken is the canonical type-name placeholder in template sources.
	TypeToken = "Template"
)

// Template tree layout.
const (
	// TemplateDirName is the template root directory under the base module
	// directory.
	TemplateDirName = "template"

	// TemplatePackageSegment is the final path segment of the template's
	// namespace directory, renamed to the module id during instantiation.
	TemplatePackageSegment = "template"

	// BuildDescriptor is the Gradle build file at the module root.
	BuildDescriptor = "build.gradle.kts"

	// KotlinSourceRoot is the slash-separated path from the module root to
	// the directory holding the namespace segment.
	KotlinSourceRoot = "src/main/kotlin/com/roshni/games/game"

	// KotlinExt is the Kotlin source file extension.
	KotlinExt = ".kt"

	// GameConfigFile is the generated per-module configuration source file.
	GameConfigFile = "GameConfig.kt"
)

// Defaults baked into the generated GameConfig.kt.
const (
	DefaultGameVersion = "1.0.0"
	DefaultMinSDK      = 24
	DefaultTargetSDK   = 34
)

// Filesystem permissions for created files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
	ExecPerm = 0o755
)

// GamemodYAML is the optional tool configuration file at the repo root.
const GamemodYAML = "gamemod.yaml"
