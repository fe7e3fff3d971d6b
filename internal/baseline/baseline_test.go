package baseline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "kritik-baseline.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Count() != 0 {
		t.Fatalf("expected empty baseline, got %d entries", b.Count())
	}
}

func TestRecordAndSuppress(t *testing.T) {
	b := New()
	sig := "Test.kt$Repo$fun load(id: String)"

	b.Record(sig, "function-too-long")
	b.Record(sig, "function-too-long")
	b.Record(sig, "long-parameter-list")

	if !b.IsSuppressed(sig, "function-too-long") {
		t.Fatalf("expected pair to be suppressed")
	}
	if b.IsSuppressed(sig, "large-class") {
		t.Fatalf("unexpected suppression for unrecorded rule")
	}
	if b.IsSuppressed("Other.kt$fun x()", "function-too-long") {
		t.Fatalf("unexpected suppression for unrecorded signature")
	}
	if b.Count() != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", b.Count())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baselines", "main.yml")

	b := New()
	b.Record("Test.kt$Repo$fun load(id: String)", "function-too-long")
	b.Record("Test.kt$Repo<T> : Base", "large-class")

	changed, err := b.Save(path)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !changed {
		t.Fatalf("expected first save to write the file")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", loaded.Count())
	}
	if !loaded.IsSuppressed("Test.kt$Repo<T> : Base", "large-class") {
		t.Fatalf("round trip lost an entry")
	}

	// Saving identical content again must not rewrite the file.
	changed, err = loaded.Save(path)
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if changed {
		t.Fatalf("expected unchanged baseline to be skipped")
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yml")
	if err := os.WriteFile(path, []byte("version: 99\nsuppressed: {}\n"), 0644); err != nil {
		t.Fatalf("failed to write baseline: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected version error")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yml")
	if err := os.WriteFile(path, []byte("suppressed: ["), 0644); err != nil {
		t.Fatalf("failed to write baseline: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
