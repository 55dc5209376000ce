// Package config provides operator preferences for sepgen.
//
// This package manages a YAML-based preferences file holding the default
// output directory, the serve command's listen address, and site-wide field
// defaults applied to every new provisioning form. The file follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The preferences file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/sepgen/config.yaml or $HOME/.config/sepgen/config.yaml
//   - macOS: $HOME/.config/sepgen/config.yaml
//   - Windows: %LOCALAPPDATA%\sepgen\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores SIP or SSH credentials. Those are
// entered per phone in the wizard and live only in the generated file.
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	prefs.OutputDir = "/srv/tftpboot"
//	prefs.Defaults["processNodeName1"] = "192.168.1.10"
//
//	if err := prefs.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File operations are protected by a mutex to ensure atomic writes.
package config
