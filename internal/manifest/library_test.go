package manifest

import "testing"

func TestClassifyLibraryPath(t *testing.T) {
	tests := []struct {
		raw  string
		want LibraryPathKind
	}{
		{"libopenxr_monado.so", DynamicLibrarySearchPath},
		{"MixedRealityRuntime.dll", DynamicLibrarySearchPath},
		{"", DynamicLibrarySearchPath},
		{"../lib/libopenxr_monado.so", RelativeToManifest},
		{"bin/vrclient.dll", RelativeToManifest},
		{`bin\win64\vrclient_x64.dll`, RelativeToManifest},
		{"./x.so", RelativeToManifest},
		{"/usr/lib/libopenxr_monado.so", Absolute},
		{`\\server\share\rt.dll`, Absolute},
		{`C:\Program Files\Varjo\VarjoOpenXR.dll`, Absolute},
		{"C:/rt/rt.dll", Absolute},
		{"é:/x", Absolute},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ClassifyLibraryPath(tt.raw); got != tt.want {
				t.Errorf("ClassifyLibraryPath(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClassifyLibraryPath_Idempotent(t *testing.T) {
	for _, raw := range []string{"a.so", "a/b.so", "/a/b.so", `C:\a.dll`} {
		if ClassifyLibraryPath(raw) != ClassifyLibraryPath(raw) {
			t.Errorf("ClassifyLibraryPath(%q) not stable", raw)
		}
	}
}

func TestDescribe(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name     string
		manifest string
		library  string
		want     string
	}{
		{
			name:     "search path",
			manifest: "/usr/share/openxr/1/openxr_monado.json",
			library:  "libopenxr_monado.so",
			want:     "/usr/share/openxr/1/openxr_monado.json\n    ⮩ libopenxr_monado.so in the dynamic library search path",
		},
		{
			name:     "relative",
			manifest: "/home/tester/.config/openxr/1/dev.json",
			library:  "../../build/libopenxr_monado.so",
			want:     "~/.config/openxr/1/dev.json\n    ⮩ ../../build/libopenxr_monado.so relative to the manifest",
		},
		{
			name:     "absolute in home",
			manifest: "/etc/openxr/1/dev.json",
			library:  "/home/tester/build/libopenxr_monado.so",
			want:     "/etc/openxr/1/dev.json\n    ⮩ ~/build/libopenxr_monado.so",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.manifest, tt.library); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLibraryPathKind_String(t *testing.T) {
	if Absolute.String() != "absolute" {
		t.Errorf("Absolute.String() = %q", Absolute.String())
	}
	if LibraryPathKind(99).String() != "unknown" {
		t.Errorf("unknown kind String() = %q", LibraryPathKind(99).String())
	}
}
