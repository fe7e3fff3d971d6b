package ignore

import "testing"

func TestMatcher_DefaultAndUserOverrides(t *testing.T) {
	m := NewMatcher([]string{
		"generated/**",
		"!generated/keep/Api.kt",
		"*.tmp",
	})

	cases := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{path: ".git/config", isDir: false, ignored: true},
		{path: ".gradle/caches/journal.lock", isDir: false, ignored: true},
		{path: "build/classes/Main.class", isDir: false, ignored: true},
		{path: "generated/api/Client.kt", isDir: false, ignored: true},
		{path: "generated/keep/Api.kt", isDir: false, ignored: false},
		{path: "nested/cache.tmp", isDir: false, ignored: true},
		{path: "src/main/kotlin/Main.kt", isDir: false, ignored: false},
	}

	for _, tc := range cases {
		got := m.ShouldIgnore(tc.path, tc.isDir)
		if got != tc.ignored {
			t.Fatalf("path %s: expected ignored=%v, got %v", tc.path, tc.ignored, got)
		}
	}
}

func TestMatcher_NegatedDirectoryRule(t *testing.T) {
	m := NewMatcher([]string{
		"out/",
		"!out/include/",
	})

	if !m.ShouldIgnore("out/tmp/File.kt", false) {
		t.Fatalf("expected out/tmp/File.kt to be ignored")
	}
	if m.ShouldIgnore("out/include/File.kt", false) {
		t.Fatalf("expected out/include/File.kt to be included")
	}
}
