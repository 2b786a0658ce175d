package output

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"corpstat/internal/fileutil"
	"corpstat/internal/logging"
	"corpstat/internal/report"
)

// LockFileName is the advisory lock file created inside the output directory.
const LockFileName = ".corpstat.lock"

// ErrLocked is returned by Lock when another process holds the directory.
var ErrLocked = errors.New("output directory in use")

// ErrorHandler is called once for every report that could not be written.
type ErrorHandler func(name, path string, err error)

// Failure records a report that could not be written.
type Failure struct {
	Name string
	Path string
	Err  error
}

// Result summarizes a WriteAll call.
type Result struct {
	Written []string
	Failed  []Failure
	Bytes   int64
}

// Writer writes report artifacts into Dir.
type Writer struct {
	Dir     string
	Logger  *slog.Logger
	OnError ErrorHandler

	lock *flock.Flock
}

// NewWriter returns a Writer for dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{
		Dir:    dir,
		Logger: logging.NewComponentLogger(logger, "writer"),
	}
}

// Lock creates Dir if needed and takes an exclusive advisory lock on it.
// It fails with ErrLocked when another process already holds the lock.
func (w *Writer) Lock() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(w.Dir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", w.Dir, ErrLocked)
	}
	w.lock = lock
	return nil
}

// Unlock releases the lock taken by Lock. It is a no-op when not locked.
func (w *Writer) Unlock() {
	if w.lock == nil {
		return
	}
	if err := w.lock.Unlock(); err != nil {
		w.logger().Warn("failed to release output lock", logging.Error(err))
	}
	w.lock = nil
}

// WriteAll writes every artifact to Dir/<artifact file name>. Failures are
// logged, passed to OnError and recorded in the result; they do not stop the
// remaining writes.
func (w *Writer) WriteAll(artifacts []report.Artifact) Result {
	var result Result
	dirErr := os.MkdirAll(w.Dir, 0o755)

	for _, artifact := range artifacts {
		path := filepath.Join(w.Dir, artifact.FileName())
		if dirErr != nil {
			w.fail(&result, artifact.Name(), path, fmt.Errorf("create output directory: %w", dirErr))
			continue
		}
		text := artifact.Text()
		w.logger().Info("writing report",
			logging.String(logging.FieldDomain, artifact.Name()),
			logging.String(logging.FieldPath, path),
			logging.Int("bytes", len(text)),
			logging.Int("entries", artifact.Report.Entries()),
		)
		if err := fileutil.WriteFileAtomic(path, []byte(text), 0o644); err != nil {
			w.fail(&result, artifact.Name(), path, err)
			continue
		}
		result.Written = append(result.Written, path)
		result.Bytes += int64(len(text))
	}
	return result
}

func (w *Writer) fail(result *Result, name, path string, err error) {
	result.Failed = append(result.Failed, Failure{Name: name, Path: path, Err: err})
	logging.ErrorWithContext(w.logger(), "report write failed", "report_write_failed",
		logging.String(logging.FieldDomain, name),
		logging.String(logging.FieldPath, path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check output_dir permissions and free space"),
	)
	if w.OnError != nil {
		w.OnError(name, path, err)
	}
}

func (w *Writer) logger() *slog.Logger {
	if w.Logger == nil {
		return logging.NewNop()
	}
	return w.Logger
}
