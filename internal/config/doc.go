// Package config provides the configuration for vedit.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (VEDIT_*)   │
//	├─────────────────────────────┤
//	│  2. Config File (TOML)      │  ← ~/.config/vedit/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Environment variables use the upper-cased key with dots replaced by
// underscores, for example VEDIT_EDITOR_TAB_WIDTH.
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	width := cfg.Editor.TabWidth
//
// Flags are bound by the caller on the viper instance returned by New
// before calling Read.
package config
