package main

import (
	"runtime"
	"strings"
	"testing"

	"github.com/sepgen/sepgen/internal/config"
)

func TestRunConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("test relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Run("persists settings and field defaults", func(t *testing.T) {
		prefDefaults = nil
		if err := configCmd.Flags().Set("output-dir", "/srv/tftpboot"); err != nil {
			t.Fatalf("Set(output-dir): %v", err)
		}
		if err := configCmd.Flags().Set("default", "processNodeName1=192.168.1.10"); err != nil {
			t.Fatalf("Set(default): %v", err)
		}

		if err := runConfig(configCmd, nil); err != nil {
			t.Fatalf("runConfig: %v", err)
		}

		prefs, err := config.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if prefs.OutputDir != "/srv/tftpboot" {
			t.Errorf("OutputDir=%q, want /srv/tftpboot", prefs.OutputDir)
		}
		if got := prefs.Defaults["processNodeName1"]; got != "192.168.1.10" {
			t.Errorf("Defaults[processNodeName1]=%q, want 192.168.1.10", got)
		}
	})

	t.Run("rejects a default for an unknown tag", func(t *testing.T) {
		prefDefaults = []string{"noSuchField=1"}
		err := runConfig(configCmd, nil)
		if err == nil {
			t.Fatal("runConfig accepted an unknown field tag")
		}
		if !strings.Contains(err.Error(), "noSuchField") {
			t.Errorf("error %q does not name the bad tag", err)
		}

		prefs, err := config.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if _, saved := prefs.Defaults["noSuchField"]; saved {
			t.Error("invalid default reached the preferences file")
		}
	})

	t.Run("rejects a malformed default", func(t *testing.T) {
		prefDefaults = []string{"no-equals-sign"}
		if err := runConfig(configCmd, nil); err == nil {
			t.Fatal("runConfig accepted a default without tag=value form")
		}
	})
}
