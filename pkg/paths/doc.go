// Package paths resolves the directories cgrc reads rule files from and
// writes state to.
//
// # Locations
//
// Rule files are looked up by name in three places after the embedded set:
//
//   - User: $CGRC_CONFIG_DIR, else $SNAP_USER_DATA, else $XDG_CONFIG_HOME/cgrc
//   - Extra: directories listed in the settings file (locations.extra)
//   - System: $CGRC_SYSTEM_DIR, else $SNAP_DATA, else /etc/cgrc
//
// The settings file itself lives at <user dir>/cgrc.toml. Logs go to
// $XDG_STATE_HOME/cgrc.
package paths
