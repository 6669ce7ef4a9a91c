// Package scanner discovers SVG icon assets under a source root.
//
// Directories are walked depth-first with entries in lexicographic order, so
// two scans of an unchanged tree yield the same assets in the same order on
// every platform.
package scanner

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/utils"
)

// Scanner enumerates the SVG assets below a root directory.
type Scanner struct {
	root    string
	exclude []string
}

// New returns a Scanner for root. Exclude patterns use path.Match syntax and
// are matched against the slash relative path and the base name.
func New(root string, exclude []string) *Scanner {
	return &Scanner{root: root, exclude: exclude}
}

// Root returns the directory being scanned.
func (s *Scanner) Root() string {
	return s.root
}

// Check verifies that the root exists and is a directory.
func (s *Scanner) Check() error {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &model.NotFoundError{Path: s.root}
		}
		return &model.NotFoundError{Path: s.root, Err: err}
	}
	if !info.IsDir() {
		return &model.NotFoundError{Path: s.root, Err: errors.New("not a directory")}
	}
	return nil
}

// Assets returns a lazy sequence of assets. Each call walks the tree again.
// The first error ends the sequence.
func (s *Scanner) Assets() iter.Seq2[model.IconAsset, error] {
	return func(yield func(model.IconAsset, error) bool) {
		if err := s.Check(); err != nil {
			yield(model.IconAsset{}, err)
			return
		}
		stopped := false
		walkErr := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p == s.root {
				return nil
			}
			rel, err := filepath.Rel(s.root, p)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if s.skip(rel, d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isSVG(d.Name()) {
				return nil
			}
			if !isRegularFile(p, d) {
				utils.Debug("skipping non-regular file %s", rel)
				return nil
			}
			asset, err := load(p, rel)
			if err != nil {
				return err
			}
			if !yield(asset, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield(model.IconAsset{}, walkErr)
		}
	}
}

// Scan collects every asset, stopping at the first error.
func (s *Scanner) Scan() ([]model.IconAsset, error) {
	var assets []model.IconAsset
	for asset, err := range s.Assets() {
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (s *Scanner) skip(rel, name string) bool {
	if strings.HasPrefix(name, ".") {
		utils.Debug("skipping hidden path %s", rel)
		return true
	}
	for _, pattern := range s.exclude {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func load(p, rel string) (model.IconAsset, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return model.IconAsset{}, err
	}
	info, err := ParseSVG(raw)
	if err != nil {
		return model.IconAsset{}, &model.MalformedAssetError{Path: rel, Err: err}
	}
	return model.IconAsset{
		RelativePath: strings.Split(rel, "/"),
		RawMarkup:    raw,
		SVG:          info,
	}, nil
}

func isSVG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), constants.SVGExtension)
}

func isRegularFile(p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
