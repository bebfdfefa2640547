// Package installer copies the built-in rule files into a directory so
// users can edit them. Files are written through a synthfs pipeline.
package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/cgrc/pkg/confstore"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/internal/hashutil"
	"github.com/arthur-debert/cgrc/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// Status is the outcome for one rule file
type Status string

const (
	StatusWritten   Status = "written"
	StatusSkipped   Status = "skipped"
	StatusPlanned   Status = "planned"
	StatusFailed    Status = "failed"
	StatusUnchanged Status = "unchanged"
)

// Options configures Install
type Options struct {
	// Dir is the destination, usually the user rule directory
	Dir string

	// Force overwrites files that already exist
	Force bool

	// DryRun reports what would happen without writing
	DryRun bool
}

// Result reports one rule file
type Result struct {
	Name   string
	Path   string
	Status Status
	Error  error

	// Checksum of the built-in content
	Checksum string
}

// Installer writes rule files
type Installer struct {
	fs     filesystem.FullFileSystem
	logger zerolog.Logger
}

// New returns an Installer on the OS filesystem
func New() *Installer {
	// Use PathAwareFileSystem to handle absolute paths directly
	osfs := filesystem.NewOSFileSystem("/")
	return &Installer{
		fs:     synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(),
		logger: logging.GetLogger("installer"),
	}
}

// Install writes the named built-in rule files into opts.Dir; no names
// means all of them.
func Install(ctx context.Context, names []string, opts Options) ([]Result, error) {
	return New().Install(ctx, names, opts)
}

// Install writes the named built-in rule files into opts.Dir
func (i *Installer) Install(ctx context.Context, names []string, opts Options) ([]Result, error) {
	if opts.Dir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no destination directory")
	}
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", opts.Dir)
	}

	if len(names) == 0 {
		names = confstore.Embedded()
	}

	sfs := synthfs.New()
	var ops []synthfs.Operation
	results := make([]Result, 0, len(names))
	index := make(map[synthfs.OperationID]int)

	for _, name := range names {
		content, ok := confstore.EmbeddedContent(name)
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound,
				"%q is not a built-in rule file", name).WithDetail("name", name)
		}

		target := filepath.Join(dir, name)
		res := Result{Name: name, Path: target}

		res.Checksum = hashutil.Checksum([]byte(content))
		existing, statErr := hashutil.FileChecksum(target)
		exists := statErr == nil
		switch {
		case exists && existing == res.Checksum:
			res.Status = StatusUnchanged
		case exists && !opts.Force:
			res.Status = StatusSkipped
		case opts.DryRun:
			res.Status = StatusPlanned
		default:
			id := fmt.Sprintf("write_%s", name)
			data := []byte(content)
			ops = append(ops, sfs.CustomOperationWithID(id, func(ctx context.Context, fs filesystem.FileSystem) error {
				if err := fs.MkdirAll(dir, 0755); err != nil {
					return err
				}
				return fs.WriteFile(target, data, 0644)
			}))
			index[synthfs.OperationID(id)] = len(results)
			res.Status = StatusWritten
		}

		i.logger.Debug().Str("name", name).Str("path", target).Str("status", string(res.Status)).Str("checksum", res.Checksum).Msg("Planned rule file")
		results = append(results, res)
	}

	if len(index) == 0 {
		return results, nil
	}

	options := synthfs.DefaultPipelineOptions()
	i.logger.Info().Int("operationCount", len(ops)).Str("dir", dir).Msg("Installing rule files")

	result, err := synthfs.RunWithOptions(ctx, i.fs, options, ops...)
	i.applyResults(result, index, results)

	if err != nil {
		return results, errors.Wrapf(err, errors.ErrInstall, "failed to install rule files into %s", dir)
	}
	return results, nil
}

// applyResults marks failed operations on their rule file
func (i *Installer) applyResults(result *synthfs.Result, index map[synthfs.OperationID]int, results []Result) {
	if result == nil {
		return
	}
	for _, op := range result.GetOperations() {
		opResult, ok := op.(synthfs.OperationResult)
		if !ok {
			continue
		}
		pos, ok := index[opResult.OperationID]
		if !ok {
			continue
		}
		if opResult.Status != synthfs.StatusSuccess {
			results[pos].Status = StatusFailed
			results[pos].Error = opResult.Error
			i.logger.Warn().
				Str("operationID", string(opResult.OperationID)).
				Err(opResult.Error).
				Msg("Rule file not written")
		}
	}
}
