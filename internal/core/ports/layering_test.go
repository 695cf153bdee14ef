package ports_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoreDoesNotImportAdapters walks internal/core and fails when production code
// depends on an adapter package. Tests may still wire real adapters.
func TestCoreDoesNotImportAdapters(t *testing.T) {
	coreDir := filepath.Join("..")
	fset := token.NewFileSet()
	checked := 0

	err := filepath.WalkDir(coreDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		checked++

		for _, spec := range file.Imports {
			importPath, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				return err
			}
			assert.False(t, strings.HasPrefix(importPath, "shop/internal/adapters"),
				"%s imports %s", path, importPath)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Positive(t, checked)
}
