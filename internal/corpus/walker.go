package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"corpstat/internal/logging"
)

// Block is the decoded content of one corpus file.
type Block struct {
	Language string
	Project  string
	Path     string
	Text     string
}

// Sink receives every non-empty file of a walk. Returning an error stops the
// walk.
type Sink func(Block) error

// Stats summarizes one WalkLanguage call.
type Stats struct {
	Projects int
	Files    int
	Skipped  int
	Bytes    int64
}

// Walker traverses a corpus root.
type Walker struct {
	Root    string
	Decoder *Decoder
	Logger  *slog.Logger
}

// NewWalker builds a Walker for root using the given encoding label.
func NewWalker(root, encodingLabel string, logger *slog.Logger) (*Walker, error) {
	decoder, err := NewDecoder(encodingLabel)
	if err != nil {
		return nil, err
	}
	return &Walker{
		Root:    root,
		Decoder: decoder,
		Logger:  logging.NewComponentLogger(logger, "walker"),
	}, nil
}

// Languages lists the language directories under the root in name order.
func (w *Walker) Languages() ([]string, error) {
	entries, err := os.ReadDir(w.Root)
	if err != nil {
		return nil, fmt.Errorf("list corpus root: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Projects lists the project directories of a language in name order.
func (w *Walker) Projects(language string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.Root, language))
	if err != nil {
		return nil, fmt.Errorf("list language %q: %w", language, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// WalkLanguage feeds every file below <root>/<language> to sink. Entries
// directly under the language directory are projects; anything that is not
// a directory there is ignored. Unreadable files are logged and skipped.
func (w *Walker) WalkLanguage(ctx context.Context, language string, sink Sink) (Stats, error) {
	logger := w.logger().With(logging.String(logging.FieldLanguage, language))
	logger.Info("loading language")

	dir := filepath.Join(w.Root, language)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("list language %q: %w", language, err)
	}

	var stats Stats
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !entry.IsDir() {
			logger.Info("ignoring entry: not a directory", logging.String(logging.FieldPath, path))
			continue
		}
		start := time.Now()
		p := projectWalk{
			walker:   w,
			language: language,
			project:  entry.Name(),
			logger:   logger.With(logging.String(logging.FieldProject, entry.Name())),
			sink:     sink,
			stats:    &stats,
			visited:  map[string]struct{}{},
		}
		if err := p.walkDir(ctx, path); err != nil {
			return stats, err
		}
		stats.Projects++
		p.logger.Info("processed project",
			logging.String(logging.FieldPath, path),
			logging.Float64("elapsed_seconds", roundTo(time.Since(start).Seconds(), 2)),
		)
	}
	return stats, nil
}

func (w *Walker) logger() *slog.Logger {
	if w.Logger == nil {
		return logging.NewNop()
	}
	return w.Logger
}

type projectWalk struct {
	walker   *Walker
	language string
	project  string
	logger   *slog.Logger
	sink     Sink
	stats    *Stats
	visited  map[string]struct{}
}

func (p *projectWalk) walkDir(ctx context.Context, dir string) error {
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if _, seen := p.visited[real]; seen {
			p.logger.Debug("skipping directory already visited", logging.String(logging.FieldPath, dir))
			return nil
		}
		p.visited[real] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		p.skip("directory unreadable; contents skipped", "corpus_dir_unreadable", dir, err)
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			p.skip("entry unreadable; skipped", "corpus_entry_unreadable", path, err)
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if err := p.readFile(path); err != nil {
				return err
			}
		case info.IsDir():
			if err := p.walkDir(ctx, path); err != nil {
				return err
			}
		default:
			p.logger.Info("ignoring entry: not a directory", logging.String(logging.FieldPath, path))
		}
	}
	return nil
}

func (p *projectWalk) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		p.skip("file unreadable; skipped", "corpus_file_unreadable", path, err)
		return nil
	}
	text, err := p.walker.Decoder.Decode(data)
	if err != nil {
		p.skip("file could not be decoded; skipped", "corpus_file_undecodable", path, err)
		return nil
	}
	if text == "" {
		return nil
	}
	p.stats.Files++
	p.stats.Bytes += int64(len(data))
	if err := p.sink(Block{Language: p.language, Project: p.project, Path: path, Text: text}); err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}
	return nil
}

func (p *projectWalk) skip(msg, event, path string, err error) {
	p.stats.Skipped++
	hint := "check file permissions"
	if errors.Is(err, fs.ErrNotExist) {
		hint = "entry vanished during the scan or is a dangling symlink"
	}
	logging.WarnWithContext(p.logger, msg, event,
		logging.String(logging.FieldPath, path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "file excluded from statistics"),
	)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
