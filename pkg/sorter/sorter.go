package sorter

import (
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/mwantia/resorter/pkg/resume"
	"github.com/pkg/errors"
)

// Outcome describes what Relocate did with a single file
type Outcome string

const (
	Moved             Outcome = "moved"
	DestinationExists Outcome = "destination_exists"
	SourceMissing     Outcome = "source_missing"
)

var (
	rename = os.Rename
	remove = os.Remove
)

type Result struct {
	Outcome     Outcome `json:"outcome"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
}

// Sorter moves classified documents into one directory per category below a root
type Sorter struct {
	root string
}

func New(root string) *Sorter {
	return &Sorter{root: root}
}

func (s *Sorter) Root() string {
	return s.root
}

// Prepare creates one directory per category below the root
func (s *Sorter) Prepare() error {
	for _, category := range resume.Categories() {
		if err := os.MkdirAll(filepath.Join(s.root, string(category)), 0755); err != nil {
			return errors.Wrapf(err, "create category directory %s", category)
		}
	}
	return nil
}

// Destination returns the path a file of the given category ends up at
func (s *Sorter) Destination(category resume.Category, filename string) string {
	return filepath.Join(s.root, string(category), filepath.Base(filename))
}

// Relocate never overwrites: an existing destination leaves both files untouched.
func (s *Sorter) Relocate(src string, category resume.Category, filename string) (Result, error) {
	if !category.Valid() {
		return Result{}, errors.Errorf("unknown category %q", category)
	}
	if filename == "" {
		filename = filepath.Base(src)
	}

	result := Result{
		Source:      src,
		Destination: s.Destination(category, filename),
	}

	if err := os.MkdirAll(filepath.Dir(result.Destination), 0755); err != nil {
		return result, errors.Wrapf(err, "create category directory %s", category)
	}

	if _, err := os.Stat(result.Destination); err == nil {
		result.Outcome = DestinationExists
		return result, nil
	} else if !os.IsNotExist(err) {
		return result, errors.Wrapf(err, "stat %s", result.Destination)
	}

	if _, err := os.Stat(src); os.IsNotExist(err) {
		result.Outcome = SourceMissing
		return result, nil
	} else if err != nil {
		return result, errors.Wrapf(err, "stat %s", src)
	}

	if err := move(src, result.Destination); err != nil {
		return result, err
	}

	result.Outcome = Moved
	return result, nil
}

func move(src, dst string) error {
	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, "move %s to %s", src, dst)
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := remove(src); err != nil {
		// Keep a single copy of the file at its source.
		remove(dst)
		return errors.Wrapf(err, "remove %s", src)
	}
	return nil
}

// CopyIfAbsent copies src to dst unless dst already exists and reports whether it copied
func CopyIfAbsent(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, errors.Wrapf(err, "create directory for %s", dst)
	}
	if err := copyFile(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return errors.Wrapf(err, "copy %s to %s", src, dst)
	}

	return errors.Wrapf(out.Close(), "close %s", dst)
}
