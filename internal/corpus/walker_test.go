package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corpstat/internal/logging"
	"corpstat/internal/testsupport"
)

func newTestWalker(t *testing.T, root string) *Walker {
	t.Helper()
	w, err := NewWalker(root, "utf-8", logging.NewNop())
	if err != nil {
		t.Fatalf("NewWalker: %v", err)
	}
	return w
}

func collect(t *testing.T, w *Walker, language string) ([]Block, Stats) {
	t.Helper()
	var blocks []Block
	stats, err := w.WalkLanguage(context.Background(), language, func(b Block) error {
		blocks = append(blocks, b)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkLanguage(%q): %v", language, err)
	}
	return blocks, stats
}

func TestLanguagesSortedDirectoriesOnly(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteCorpus(t, root, map[string]string{
		"german/p/a.txt":  "x",
		"english/p/a.txt": "x",
		"README":          "not a language",
	})
	w := newTestWalker(t, root)

	langs, err := w.Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if strings.Join(langs, ",") != "english,german" {
		t.Fatalf("Languages = %v", langs)
	}
}

func TestLanguagesMissingRoot(t *testing.T) {
	w := newTestWalker(t, filepath.Join(t.TempDir(), "absent"))
	if _, err := w.Languages(); err == nil {
		t.Fatal("expected error for missing corpus root")
	}
}

func TestWalkLanguageOrderAndNesting(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteCorpus(t, root, map[string]string{
		"english/beta/z.txt":          "z",
		"english/alpha/b.txt":         "b",
		"english/alpha/a.txt":         "a",
		"english/alpha/sub/deep.txt":  "deep",
		"english/alpha/empty.txt":     "",
		"english/stray.txt":           "ignored",
		"german/other/never-read.txt": "nope",
	})
	w := newTestWalker(t, root)

	blocks, stats := collect(t, w, "english")
	var got []string
	for _, b := range blocks {
		if b.Language != "english" {
			t.Fatalf("block language = %q", b.Language)
		}
		got = append(got, b.Project+":"+b.Text)
	}
	want := "alpha:a,alpha:b,alpha:deep,beta:z"
	if strings.Join(got, ",") != want {
		t.Fatalf("walk order = %v, want %s", got, want)
	}
	if stats.Projects != 2 || stats.Files != 4 || stats.Skipped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Bytes != 7 {
		t.Fatalf("Bytes = %d, want 7", stats.Bytes)
	}
}

func TestWalkLanguageMissing(t *testing.T) {
	w := newTestWalker(t, t.TempDir())
	_, err := w.WalkLanguage(context.Background(), "klingon", func(Block) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "klingon") {
		t.Fatalf("expected missing language error, got %v", err)
	}
}

func TestWalkLanguageStopsOnSinkError(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteCorpus(t, root, map[string]string{
		"english/p/a.txt": "a",
		"english/p/b.txt": "b",
	})
	w := newTestWalker(t, root)
	boom := errors.New("boom")
	calls := 0
	_, err := w.WalkLanguage(context.Background(), "english", func(Block) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("sink called %d times, want 1", calls)
	}
}

func TestWalkLanguageHonorsCancellation(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteCorpus(t, root, map[string]string{"english/p/a.txt": "a"})
	w := newTestWalker(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.WalkLanguage(ctx, "english", func(Block) error {
		t.Fatal("sink should not be called after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWalkLanguageFollowsSymlinkedDirsOnce(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteCorpus(t, root, map[string]string{"english/p/a.txt": "a"})
	loop := filepath.Join(root, "english", "p", "loop")
	if err := os.Symlink(filepath.Join(root, "english", "p"), loop); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	w := newTestWalker(t, root)

	blocks, _ := collect(t, w, "english")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block through symlink loop, got %d", len(blocks))
	}
}

func TestWalkLanguageSkipsUnreadableFiles(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	testsupport.WriteCorpus(t, root, map[string]string{
		"english/p/a.txt":      "a",
		"english/p/secret.txt": "s",
	})
	if err := os.Chmod(filepath.Join(root, "english", "p", "secret.txt"), 0o000); err != nil {
		t.Fatal(err)
	}
	w := newTestWalker(t, root)

	blocks, stats := collect(t, w, "english")
	if len(blocks) != 1 || stats.Skipped != 1 {
		t.Fatalf("blocks=%d stats=%+v", len(blocks), stats)
	}
}
