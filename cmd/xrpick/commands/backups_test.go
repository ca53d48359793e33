package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/xrpick/internal/host"
)

func TestBackupsCommand(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		h := setupHost(t)
		h.EXPECT().Backups().Return(nil, nil)

		c, out := newTestCmd(t)
		if err := backupsCmd.RunE(c, nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "No backups found.") {
			t.Errorf("unexpected output:\n%s", out.String())
		}
	})

	t.Run("listed", func(t *testing.T) {
		h := setupHost(t)
		when := time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local)
		h.EXPECT().Backups().Return([]host.Backup{
			{Path: "/home/u/.config/openxr/1/active_runtime.json.1740832200.bak", Time: when},
		}, nil)

		c, out := newTestCmd(t)
		if err := backupsCmd.RunE(c, nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "2025-03-01 12:30:00  /home/u/.config/openxr/1/active_runtime.json.1740832200.bak") {
			t.Errorf("unexpected output:\n%s", out.String())
		}
	})
}

func TestActiveCommand(t *testing.T) {
	h := setupHost(t)
	h.EXPECT().ActiveManifests().Return([]string{`C:\RT\rt64.json`, `C:\RT\rt32.json`})

	c, out := newTestCmd(t)
	if err := activeCmd.RunE(c, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "C:\\RT\\rt64.json\nC:\\RT\\rt32.json\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
