package linux

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/paths"
	"github.com/thoreinstein/xrpick/internal/platform"
)

const (
	backupPrefix = "old_active_runtime"
	backupSuffix = ".json"
)

// activate relocates any existing active-runtime file and symlinks the
// active-runtime path to target. Failing to relocate is logged and
// tolerated; failing to place the symlink is not.
func (p *Platform) activate(target string) error {
	dest := p.ActiveRuntimePath()
	dir := filepath.Dir(dest)
	if err := p.fs.MkdirAll(dir, paths.DefaultDirPerm); err != nil {
		return errors.Mark(errors.Wrapf(err, "creating %s", dir), platform.ErrSetActive)
	}

	backup := p.nextBackupPath(dir)
	switch err := p.fs.Rename(dest, backup); {
	case err == nil:
		// A symlink carries nothing worth keeping.
		if p.isSymlink(backup) {
			if err := p.fs.Remove(backup); err != nil {
				p.logger.Warn("could not remove relocated symlink", "path", backup, "error", err)
			}
		} else {
			p.logger.Info("moved previous active runtime aside", "from", dest, "to", backup)
		}
	case errors.Is(err, fs.ErrNotExist):
		p.logger.Debug("no previous active runtime to move", "path", dest)
	default:
		p.logger.Warn("could not move previous active runtime aside", "from", dest, "to", backup, "error", err)
	}

	linker, ok := p.fs.(afero.Linker)
	if !ok {
		return errors.Mark(errors.New("filesystem does not support symlinks"), platform.ErrSetActive)
	}
	if err := linker.SymlinkIfPossible(target, dest); err != nil {
		return errors.Mark(errors.Wrapf(err, "linking %s to %s", dest, target), platform.ErrSetActive)
	}
	p.logger.Debug("activated runtime", "manifest", target, "link", dest)
	return nil
}

// nextBackupPath returns an unused backup name in dir for the current time.
func (p *Platform) nextBackupPath(dir string) string {
	stamp := p.now().Unix()
	path := filepath.Join(dir, fmt.Sprintf("%s%d%s", backupPrefix, stamp, backupSuffix))
	for n := 1; p.exists(path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s%d-%d%s", backupPrefix, stamp, n, backupSuffix))
	}
	return path
}

func (p *Platform) lstat(path string) (os.FileInfo, error) {
	if l, ok := p.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return p.fs.Stat(path)
}

func (p *Platform) exists(path string) bool {
	_, err := p.lstat(path)
	return err == nil
}

func (p *Platform) isSymlink(path string) bool {
	info, err := p.lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Backup is an active-runtime file that activation moved aside.
type Backup struct {
	Path string
	Time time.Time
	seq  int
}

// Backups lists relocated active-runtime files in the user's config
// directory, newest first.
func (p *Platform) Backups() ([]Backup, error) {
	dir := filepath.Dir(p.ActiveRuntimePath())
	entries, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var out []Backup
	for _, e := range entries {
		secs, seq, ok := parseBackupName(e.Name())
		if !ok || e.IsDir() {
			continue
		}
		out = append(out, Backup{Path: filepath.Join(dir, e.Name()), Time: time.Unix(secs, 0), seq: seq})
	}
	slices.SortFunc(out, func(a, b Backup) int {
		if c := b.Time.Compare(a.Time); c != 0 {
			return c
		}
		return b.seq - a.seq
	})
	return out, nil
}

func parseBackupName(name string) (secs int64, seq int, ok bool) {
	rest, ok := strings.CutPrefix(name, backupPrefix)
	if !ok {
		return 0, 0, false
	}
	rest, ok = strings.CutSuffix(rest, backupSuffix)
	if !ok {
		return 0, 0, false
	}
	stamp, n, hasSeq := strings.Cut(rest, "-")
	secs, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if hasSeq {
		seq, err = strconv.Atoi(n)
		if err != nil {
			return 0, 0, false
		}
	}
	return secs, seq, true
}
