package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Archive is the view of a package the Detector needs.
type Archive interface {
	// HasEntry reports whether an entry with exactly this name exists.
	HasEntry(name string) bool
	// EntryNames returns the entry names matching a doublestar glob pattern.
	EntryNames(pattern string) []string
}

// PartReader is implemented by archives that can return a part's content.
type PartReader interface {
	ReadPart(name string) ([]byte, error)
}

// ZipArchive is an Archive backed by archive/zip.
type ZipArchive struct {
	parts  map[string]*zip.File
	names  []string
	closer io.Closer
}

// OpenArchive indexes the entries of the zip in r. It does not check that the
// zip is a DOCX; use a Detector for that.
func OpenArchive(r io.ReaderAt, size int64) (*ZipArchive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, NewDocumentError("open", "", fmt.Errorf("failed to read zip file: %w", err))
	}
	return newZipArchive(zr, nil), nil
}

// OpenArchiveFile opens the zip at path. The caller must Close it.
func OpenArchiveFile(path string) (*ZipArchive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return newZipArchive(&rc.Reader, rc), nil
}

func newZipArchive(zr *zip.Reader, closer io.Closer) *ZipArchive {
	a := &ZipArchive{
		parts:  make(map[string]*zip.File, len(zr.File)),
		names:  make([]string, 0, len(zr.File)),
		closer: closer,
	}

	// Index all parts by name
	for _, file := range zr.File {
		if _, dup := a.parts[file.Name]; dup {
			continue
		}
		a.parts[file.Name] = file
		a.names = append(a.names, file.Name)
	}
	sort.Strings(a.names)

	return a
}

// HasEntry reports whether the archive has an entry named name.
func (a *ZipArchive) HasEntry(name string) bool {
	_, ok := a.parts[name]
	return ok
}

// EntryNames returns the sorted entry names matching pattern. A malformed
// pattern matches nothing.
func (a *ZipArchive) EntryNames(pattern string) []string {
	if !doublestar.ValidatePattern(pattern) {
		return nil
	}
	var matches []string
	for _, name := range a.names {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matches = append(matches, name)
		}
	}
	return matches
}

// Names returns all entry names, sorted.
func (a *ZipArchive) Names() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Open returns a reader for the named part.
func (a *ZipArchive) Open(name string) (io.ReadCloser, error) {
	file, ok := a.parts[name]
	if !ok {
		return nil, NewDocumentError("open", name, fmt.Errorf("part not found"))
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewDocumentError("open", name, err)
	}
	return rc, nil
}

// ReadPart retrieves the content of a specific part
func (a *ZipArchive) ReadPart(name string) ([]byte, error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewDocumentError("read", name, err)
	}
	return content, nil
}

// Close releases the file opened by OpenArchiveFile. It is a no-op for
// archives created with OpenArchive.
func (a *ZipArchive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// MapArchive is an in-memory Archive keyed by entry name, handy for callers
// whose package reader is not a zip.
type MapArchive map[string][]byte

func (m MapArchive) HasEntry(name string) bool {
	_, ok := m[name]
	return ok
}

func (m MapArchive) EntryNames(pattern string) []string {
	if !doublestar.ValidatePattern(pattern) {
		return nil
	}
	var matches []string
	for name := range m {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

func (m MapArchive) ReadPart(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, NewDocumentError("read", name, fmt.Errorf("part not found"))
	}
	return content, nil
}
