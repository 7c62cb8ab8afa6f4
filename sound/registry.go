// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Scanner walks a container front to back once and builds the file's
// frame table. Implementations read only what the cheap scan needs
// (headers plus per-frame peeks), never a decoded stream.
type Scanner interface {
	// Scan reads r (size bytes long) and returns a fully populated
	// Index. progress may be nil.
	Scan(r io.ReadSeeker, size int64, progress ProgressFunc) (*Index, error)
}

// Factory announces a backend: the extensions it claims and a
// constructor for fresh scanners.
type Factory interface {
	Extensions() []string
	NewScanner() Scanner
}

// Registry maps filename extensions to backend factories. It is an
// explicit value: construct one at session start and pass it along.
// There is no package-level registry.
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

// Register claims f's extensions, lowercased. A later registration of
// the same extension overrides the earlier one.
func (r *Registry) Register(f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, ext := range f.Extensions() {
		r.factories[strings.ToLower(ext)] = f
	}
}

// Resolve maps filename to the factory claiming its extension. The
// extension is the base name's last dot-delimited segment, compared
// lowercase. A name with no usable extension, or an unclaimed one,
// resolves to (nil, false); that is a normal outcome, not an error.
// Resolve performs no I/O.
func (r *Registry) Resolve(filename string) (Factory, bool) {
	ext, ok := extensionOf(filename)
	if !ok {
		return nil, false
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[ext]
	return f, ok
}

// IsSupported reports whether Resolve finds a factory for filename.
func (r *Registry) IsSupported(filename string) bool {
	_, ok := r.Resolve(filename)
	return ok
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.factories))
	for ext := range r.factories {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	return exts
}

// Build opens path, resolves its backend and scans the file into an
// Index. A missing file fails with the os error (errors.Is against
// fs.ErrNotExist holds); an unclaimed extension fails wrapping
// ErrUnsupportedFormat; scan failures keep their backend error.
func (r *Registry) Build(path string, progress ProgressFunc) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	fac, ok := r.Resolve(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	idx, err := fac.NewScanner().Scan(f, info.Size(), progress)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	return idx, nil
}

func extensionOf(name string) (string, bool) {
	base := strings.ToLower(filepath.Base(name))

	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return "", false
	}

	return base[i+1:], true
}
