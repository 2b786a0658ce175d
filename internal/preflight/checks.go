package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"corpstat/internal/corpus"
)

// Access is the permission set a directory check requires.
type Access uint32

const (
	// Read requires listing and reading the directory.
	Read Access = unix.R_OK | unix.X_OK
	// ReadWrite additionally requires creating files in the directory.
	ReadWrite Access = unix.R_OK | unix.W_OK | unix.X_OK
)

func (a Access) String() string {
	if a&unix.W_OK != 0 {
		return "read/write"
	}
	return "read"
}

// CheckDirectoryAccess verifies that the directory exists and grants access.
func CheckDirectoryAccess(name, path string, access Access) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, uint32(access)); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, access)}
}

// CheckOutputDirectory verifies that path is writable, or that its nearest
// existing ancestor is writable so the directory can be created.
func CheckOutputDirectory(name, path string) Result {
	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path, ReadWrite)
	} else if !os.IsNotExist(err) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	parent := filepath.Dir(path)
	for {
		if _, err := os.Stat(parent); err == nil {
			break
		}
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}
	res := CheckDirectoryAccess(name, parent, ReadWrite)
	if !res.Passed {
		res.Detail = fmt.Sprintf("%s (error: cannot be created: %s)", path, res.Detail)
		return res
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckEncoding verifies that label names a supported text encoding.
func CheckEncoding(name, label string) Result {
	decoder, err := corpus.NewDecoder(label)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%q (error: unsupported encoding)", label)}
	}
	return Result{Name: name, Passed: true, Detail: decoder.Name()}
}

// CheckLanguages verifies that the corpus holds at least one language and
// every requested language exists.
func CheckLanguages(name, root string, requested []string) Result {
	walker := &corpus.Walker{Root: root}
	found, err := walker.Languages()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", root, err)}
	}
	if len(requested) == 0 {
		if len(found) == 0 {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no language directories)", root)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d found: %s", len(found), strings.Join(found, ", "))}
	}

	present := make(map[string]struct{}, len(found))
	for _, lang := range found {
		present[lang] = struct{}{}
	}
	var missing []string
	for _, lang := range requested {
		if _, ok := present[lang]; !ok {
			missing = append(missing, lang)
		}
	}
	if len(missing) > 0 {
		return Result{Name: name, Detail: fmt.Sprintf("missing under %s: %s", root, strings.Join(missing, ", "))}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(requested, ", ")}
}
