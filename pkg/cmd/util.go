package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mapperkit/pkg/ast"
	"github.com/pseudomuto/mapperkit/pkg/parser"
)

// modeFile is the file mode used when writing extracted SQL files.
const modeFile = os.FileMode(0o644)

// collectMapperFiles expands the given paths into mapper XML file paths.
// File paths are taken as-is; directories are walked recursively for
// .xml files. When paths is empty, the config paths are used instead.
func collectMapperFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = currentConfig.Paths
	}
	if len(paths) == 0 {
		return nil, errors.New("no paths given and no paths configured")
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".xml") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk %s", path)
		}
	}

	return files, nil
}

// parseMapperFile parses one mapper XML file into its AST root.
func parseMapperFile(path string) (*ast.RootNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	root, err := parser.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return root, nil
}
