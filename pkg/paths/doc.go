// Package paths provides centralized path handling for lazy-scripts.
//
// It resolves the scripts directory and the XDG-based output layout:
//
//   - Scripts: $LAZY_SCRIPTS_DIR, the configured scripts_dir, the git
//     top-level of the working directory, or the working directory itself
//   - Data: $XDG_DATA_HOME/lazy-scripts (override: LAZY_SCRIPTS_DATA_DIR)
//     with bin/ for stubs and zshrc/ for shell profile sandboxes
//   - Desktop entries: $XDG_DATA_HOME/applications
//     (override: LAZY_SCRIPTS_APPLICATIONS_DIR)
//   - Config: $XDG_CONFIG_HOME/lazy-scripts/config.toml
//     (override: LAZY_SCRIPTS_CONFIG_DIR)
package paths
