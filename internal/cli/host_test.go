package cli

import (
	"slices"
	"testing"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/host"
	"github.com/thoreinstein/xrpick/internal/manifest"
	"github.com/thoreinstein/xrpick/internal/platform"
)

type fakeRuntime struct {
	p    *fakePlatform
	base *baseruntime.BaseRuntime
}

func (r *fakeRuntime) MakeActive() error {
	if r.p.setErr != nil {
		return errors.Mark(r.p.setErr, platform.ErrSetActive)
	}
	r.p.active = r.base.ManifestPath()
	return nil
}
func (r *fakeRuntime) Name() string        { return r.base.Name() }
func (r *fakeRuntime) Manifests() []string { return []string{r.base.ManifestPath()} }
func (r *fakeRuntime) Libraries() []string { return []string{r.base.ResolveLibraryPath()} }
func (r *fakeRuntime) Describe() string    { return r.base.Describe() }

type fakePlatform struct {
	runtimes []*fakeRuntime
	active   string
	setErr   error
}

func (p *fakePlatform) add(path, name, lib string) {
	m := manifest.RuntimeManifest{
		FileFormatVersion: manifest.SupportedFileFormatVersion,
		Runtime:           manifest.Runtime{Name: name, LibraryPath: lib},
	}
	p.runtimes = append(p.runtimes, &fakeRuntime{p: p, base: baseruntime.FromManifest(path, m)})
}

func (p *fakePlatform) FindAvailableRuntimes([]string) ([]*fakeRuntime, []platform.ManifestError, error) {
	return slices.Clone(p.runtimes), nil, nil
}

func (p *fakePlatform) ActiveRuntimeManifests() []string {
	if p.active == "" {
		return nil
	}
	return []string{p.active}
}

func (p *fakePlatform) ActiveData() string { return p.active }

func (p *fakePlatform) RuntimeActiveState(r *fakeRuntime, d string) platform.ActiveState {
	if d != "" && d == r.base.ManifestPath() {
		return platform.ActiveIndependentRuntime
	}
	return platform.NotActive
}

func newTestSession(p *fakePlatform, fsys afero.Fs) *session[*fakeRuntime, string] {
	return &session[*fakeRuntime, string]{
		os:       "test",
		fs:       fsys,
		platform: p,
		manifests: func(r *fakeRuntime) []host.LabeledManifest {
			return []host.LabeledManifest{{Label: "x86_64", Base: r.base}}
		},
		backups: func() ([]host.Backup, error) { return nil, nil },
	}
}

func TestSession_BeforeRefresh(t *testing.T) {
	s := newTestSession(&fakePlatform{}, afero.NewMemMapFs())
	if s.Runtimes() != nil || s.Errors() != nil || s.PlatformRuntimes() != nil {
		t.Error("an unrefreshed session should report nothing")
	}
	if err := s.Activate(1); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Activate() error = %v, want ErrNotLoaded", err)
	}
}

func TestSession_RefreshAndActivate(t *testing.T) {
	p := &fakePlatform{}
	p.add("/etc/xdg/openxr/1/monado.json", "Monado", "libopenxr_monado.so")
	p.add("/home/u/.config/openxr/1/steamvr.json", "SteamVR", "/opt/steamvr/vrclient.so")
	p.active = "/etc/xdg/openxr/1/monado.json"

	s := newTestSession(p, afero.NewMemMapFs())
	if err := s.Refresh(nil); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	infos := s.Runtimes()
	if len(infos) != 2 || infos[0].Index != 1 || infos[1].Index != 2 {
		t.Fatalf("Runtimes() = %+v", infos)
	}
	if infos[0].State != platform.ActiveIndependentRuntime || infos[1].State != platform.NotActive {
		t.Errorf("states = %v, %v", infos[0].State, infos[1].State)
	}

	if err := s.Activate(2); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	infos = s.Runtimes()
	if infos[0].State != platform.NotActive || infos[1].State != platform.ActiveIndependentRuntime {
		t.Errorf("active data was not re-read after activation: %v, %v", infos[0].State, infos[1].State)
	}
	if got := s.ActiveManifests(); !slices.Equal(got, []string{"/home/u/.config/openxr/1/steamvr.json"}) {
		t.Errorf("ActiveManifests() = %v", got)
	}

	if err := s.Activate(3); !errors.Is(err, errors.ErrInvalidSelection) {
		t.Errorf("Activate(3) error = %v, want ErrInvalidSelection", err)
	}
}

func TestSession_ActivateFailure(t *testing.T) {
	p := &fakePlatform{setErr: errors.New("permission denied")}
	p.add("/etc/xdg/openxr/1/monado.json", "Monado", "libopenxr_monado.so")
	s := newTestSession(p, afero.NewMemMapFs())
	if err := s.Refresh(nil); err != nil {
		t.Fatal(err)
	}
	if err := s.Activate(1); !errors.Is(err, platform.ErrSetActive) {
		t.Errorf("Activate() error = %v, want ErrSetActive", err)
	}
}

func TestSession_RefreshKeepsIndices(t *testing.T) {
	p := &fakePlatform{}
	p.add("/a.json", "A", "liba.so")
	s := newTestSession(p, afero.NewMemMapFs())
	if err := s.Refresh(nil); err != nil {
		t.Fatal(err)
	}

	p.runtimes = nil
	p.add("/b.json", "B", "libb.so")
	p.add("/a.json", "A again", "liba.so")
	if err := s.Refresh(nil); err != nil {
		t.Fatal(err)
	}

	infos := s.Runtimes()
	if len(infos) != 2 || infos[0].Name != "A" || infos[1].Name != "B" {
		t.Errorf("Runtimes() = %+v", infos)
	}
}

func TestSession_Details(t *testing.T) {
	p := &fakePlatform{}
	p.add("/etc/xdg/openxr/1/monado.json", "Monado", "libopenxr_monado.so")
	p.add("/etc/xdg/openxr/1/broken.json", "Broken", "/opt/broken/libbroken.so")
	s := newTestSession(p, afero.NewMemMapFs())
	if err := s.Refresh(nil); err != nil {
		t.Fatal(err)
	}

	details, err := s.Details(1)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	want := ManifestDetail{
		Label:             "x86_64",
		Path:              "/etc/xdg/openxr/1/monado.json",
		FileFormatVersion: "1.0.0",
		LibraryPath:       "libopenxr_monado.so",
		LibraryKind:       "search-path",
		ResolvedLibrary:   "libopenxr_monado.so",
		Bitness:           "universal",
		NegotiateFunction: manifest.DefaultNegotiateFunction,
	}
	if len(details) != 1 || details[0] != want {
		t.Errorf("Details(1) = %+v, want %+v", details, want)
	}

	details, err = s.Details(2)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if len(details) != 1 || details[0].Bitness[:7] != "unknown" {
		t.Errorf("unreadable library should report unknown bitness, got %q", details[0].Bitness)
	}
}
