// Package config manages xrpick's own settings.
//
// The configuration file lives at <XDG config home>/xrpick/config.yaml, or
// under $XRPICK_CONFIG_DIR when set:
//
//	version: 1
//	state_file: ~/.local/state/xrpick/state.yaml
//	list_format: table
//
// Every key can also be supplied through the environment with the XRPICK_
// prefix, for example XRPICK_LIST_FORMAT=json.
//
// Call [Init] once, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//
// [Load] validates what it reads; [Validate] returns every violation.
package config
