package buildinfo

import "testing"

func TestShort(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	cases := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"v1.2.0", "abcdef0123", "v1.2.0"},
		{"dev", "abcdef0123", "abcdef0"},
		{"", "abc", "abc"},
	}
	for _, tc := range cases {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}
