// Package confstore finds rule files by name. Names are looked up in the
// embedded set first, then in the user directory, any extra directories,
// and finally the system directory.
package confstore

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/filesystem"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/cgrc/pkg/rules"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

//go:embed confs/*
var embeddedConfs embed.FS

const embeddedDir = "confs"

// Location says where a rule file was found
type Location string

const (
	LocationEmbedded Location = "embedded"
	LocationUser     Location = "user"
	LocationExtra    Location = "extra"
	LocationSystem   Location = "system"
	LocationPath     Location = "path"
)

// UnknownDescription is shown for rule files without a usable desc=
const UnknownDescription = "?"

// ConfEntry describes one rule file
type ConfEntry struct {
	Name        string
	Location    Location
	Path        string // file path, or "embedded:<name>"
	Description string
}

// Dir is one searched directory
type Dir struct {
	Location Location
	Path     string
}

// Options configures a Store
type Options struct {
	// FS defaults to the OS filesystem
	FS filesystem.FS

	// Embedded defaults to the built-in rule files
	Embedded fs.FS

	UserDir   string
	ExtraDirs []string
	SystemDir string
}

// Store resolves rule file names to content
type Store struct {
	fs       filesystem.FS
	embedded fs.FS
	dirs     []Dir
	logger   zerolog.Logger
}

// New creates a Store
func New(opts Options) *Store {
	s := &Store{
		fs:       opts.FS,
		embedded: opts.Embedded,
		logger:   logging.GetLogger("confstore"),
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	if s.embedded == nil {
		s.embedded = builtin()
	}

	if opts.UserDir != "" {
		s.dirs = append(s.dirs, Dir{Location: LocationUser, Path: opts.UserDir})
	}
	for _, dir := range opts.ExtraDirs {
		if dir != "" {
			s.dirs = append(s.dirs, Dir{Location: LocationExtra, Path: dir})
		}
	}
	if opts.SystemDir != "" {
		s.dirs = append(s.dirs, Dir{Location: LocationSystem, Path: opts.SystemDir})
	}
	return s
}

func builtin() fs.FS {
	sub, err := fs.Sub(embeddedConfs, embeddedDir)
	if err != nil {
		panic(fmt.Sprintf("embedded rule files: %v", err))
	}
	return sub
}

// Dirs returns the searched directories in lookup order
func (s *Store) Dirs() []Dir {
	out := make([]Dir, len(s.dirs))
	copy(out, s.dirs)
	return out
}

// Dir returns the first directory for loc, if configured
func (s *Store) Dir(loc Location) (string, bool) {
	for _, d := range s.dirs {
		if d.Location == loc {
			return d.Path, true
		}
	}
	return "", false
}

// Load returns the content of the rule file called name
func (s *Store) Load(name string) (string, ConfEntry, error) {
	if err := validateName(name); err != nil {
		return "", ConfEntry{}, err
	}

	if data, err := fs.ReadFile(s.embedded, name); err == nil {
		s.logger.Debug().Str("name", name).Msg("Using embedded rule file")
		return string(data), ConfEntry{
			Name:     name,
			Location: LocationEmbedded,
			Path:     "embedded:" + name,
		}, nil
	}

	tried := []string{"embedded:" + name}
	for _, dir := range s.dirs {
		candidate := filepath.Join(dir.Path, name)
		tried = append(tried, candidate)

		info, err := s.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := s.fs.ReadFile(candidate)
		if err != nil {
			return "", ConfEntry{}, errors.Wrapf(err, errors.ErrFileAccess,
				"cannot read rule file %s", candidate).WithDetail("path", candidate)
		}
		s.logger.Debug().Str("name", name).Str("path", candidate).Msg("Using rule file")
		return string(data), ConfEntry{Name: name, Location: dir.Location, Path: candidate}, nil
	}

	return "", ConfEntry{}, errors.Newf(errors.ErrConfNotFound,
		"rule file %q not found (tried %s)", name, strings.Join(tried, ", ")).
		WithDetail("name", name).
		WithDetail("tried", tried)
}

// LoadPath reads a rule file from an explicit path
func (s *Store) LoadPath(p string) (string, ConfEntry, error) {
	info, err := s.fs.Stat(p)
	if err != nil {
		return "", ConfEntry{}, errors.Wrapf(err, errors.ErrConfNotFound,
			"rule file %s not found", p).WithDetail("path", p)
	}
	if info.IsDir() {
		return "", ConfEntry{}, errors.Newf(errors.ErrInvalidInput,
			"%s is a directory", p).WithDetail("path", p)
	}
	data, err := s.fs.ReadFile(p)
	if err != nil {
		return "", ConfEntry{}, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read rule file %s", p).WithDetail("path", p)
	}
	return string(data), ConfEntry{Name: filepath.Base(p), Location: LocationPath, Path: p}, nil
}

// LoadRuleSet loads and parses a rule file. When byPath is true, name is a
// file path.
func (s *Store) LoadRuleSet(name string, byPath bool, matchTimeout time.Duration) (*rules.RuleSet, ConfEntry, error) {
	var (
		content string
		entry   ConfEntry
		err     error
	)
	if byPath {
		content, entry, err = s.LoadPath(name)
	} else {
		content, entry, err = s.Load(name)
	}
	if err != nil {
		return nil, entry, err
	}

	rs, err := rules.ParseWithOptions(strings.NewReader(content), rules.Options{
		Source:       entry.Path,
		MatchTimeout: matchTimeout,
	})
	if err != nil {
		return nil, entry, err
	}
	if desc, ok := rs.Description(); ok {
		entry.Description = desc
	} else {
		entry.Description = UnknownDescription
	}
	return rs, entry, nil
}

// List returns every rule file in lookup order: embedded first, then each
// directory. Missing directories are skipped. Unreadable files are still
// listed, with an unknown description, and their errors are returned
// together with the list.
func (s *Store) List() ([]ConfEntry, error) {
	var (
		entries []ConfEntry
		result  *multierror.Error
	)

	for _, name := range s.embeddedNames() {
		data, err := fs.ReadFile(s.embedded, name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		entries = append(entries, ConfEntry{
			Name:        name,
			Location:    LocationEmbedded,
			Path:        "embedded:" + name,
			Description: describe(string(data), "embedded:"+name),
		})
	}

	for _, dir := range s.dirs {
		dirEntries, err := s.fs.ReadDir(dir.Path)
		if err != nil {
			if !isNotExist(err) {
				result = multierror.Append(result, errors.Wrapf(err, errors.ErrFileAccess,
					"cannot list %s", dir.Path))
			}
			continue
		}
		for _, de := range dirEntries {
			if de.IsDir() {
				continue
			}
			p := filepath.Join(dir.Path, de.Name())
			entry := ConfEntry{
				Name:        de.Name(),
				Location:    dir.Location,
				Path:        p,
				Description: UnknownDescription,
			}
			data, err := s.fs.ReadFile(p)
			if err != nil {
				result = multierror.Append(result, errors.Wrapf(err, errors.ErrFileAccess,
					"cannot read rule file %s", p))
			} else {
				entry.Description = describe(string(data), p)
			}
			entries = append(entries, entry)
		}
	}

	return entries, result.ErrorOrNil()
}

func (s *Store) embeddedNames() []string {
	var names []string
	_ = fs.WalkDir(s.embedded, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Dir(p) == "." {
			names = append(names, p)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

// describe returns the desc= of content; parse failures only cost the
// description.
func describe(content, source string) string {
	rs, err := rules.ParseWithOptions(strings.NewReader(content), rules.Options{Source: source})
	if err != nil {
		return UnknownDescription
	}
	if desc, ok := rs.Description(); ok {
		return desc
	}
	return UnknownDescription
}

// Embedded returns the names of the built-in rule files
func Embedded() []string {
	return New(Options{FS: filesystem.NewMemory()}).embeddedNames()
}

// EmbeddedContent returns a built-in rule file
func EmbeddedContent(name string) (string, bool) {
	data, err := fs.ReadFile(builtin(), name)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrInvalidInput,
			"invalid rule file name %q (use --conf-path for paths)", name).WithDetail("name", name)
	}
	return nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
