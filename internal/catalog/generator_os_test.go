package catalog

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mkcatalog/internal/diagnostics"
	"github.com/vvka-141/mkcatalog/internal/files/filesystem"
	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func TestGenerate_OSFileSystem_ByteIdenticalReruns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"W3C/2015/foo.xsd":          schemaDoc("urn:w3c:2015"),
		"W3C/2015/profiles/bar.xsd": schemaDoc("urn:w3c:2015:profiles"),
		"W3C/2015/xhtml.dtd":        "",
		"MPEG-7/2001/GenreCS.xml":   classificationDoc("urn:mpeg:mpeg7:cs:GenreCS:2001"),
		"MPEG-7/readme.txt":         "not indexed",
	})

	gen := NewGenerator(filesystem.NewOSFileSystem(), diagnostics.NewNullReporter(), mkcatalog.Options{})

	_, err := gen.Generate(root)
	require.NoError(t, err)

	catalogs := []string{
		filepath.Join(root, "catalog.xml"),
		filepath.Join(root, "W3C", "catalog.xml"),
		filepath.Join(root, "MPEG-7", "catalog.xml"),
	}
	first := make([][]byte, len(catalogs))
	for i, p := range catalogs {
		first[i], err = os.ReadFile(p)
		require.NoError(t, err)
	}

	_, err = gen.Generate(root)
	require.NoError(t, err)

	for i, p := range catalogs {
		again, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, string(first[i]), string(again), p)
	}

	_, err = os.Stat(filepath.Join(root, "W3C", "2015", "catalog.xml"))
	assert.True(t, os.IsNotExist(err), "no catalog is written at tier 3")

	f, err := os.Open(catalogs[1])
	require.NoError(t, err)
	defer f.Close()
	c, err := Parse(f)
	require.NoError(t, err)
	require.NotNil(t, c.FindGroup("2015/profiles/"))
}

func TestGenerate_OSFileSystem_SymlinkLoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on Windows")
	}
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"W3C/2015/foo.xsd":          schemaDoc("urn:w3c:2015"),
		"W3C/2015/profiles/bar.xsd": schemaDoc("urn:w3c:2015:profiles"),
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "W3C"), filepath.Join(root, "W3C", "2015", "profiles", "up")))

	rec := diagnostics.NewRecorder(nil)
	summary, err := NewGenerator(filesystem.NewOSFileSystem(), rec, mkcatalog.Options{}).Generate(root)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Entries)
	warnings := rec.Filter(diagnostics.SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Equal(t, filepath.Join(root, "W3C", "2015", "profiles", "up"), warnings[0].File)

	f, err := os.Open(filepath.Join(root, "W3C", "catalog.xml"))
	require.NoError(t, err)
	defer f.Close()
	c, err := Parse(f)
	require.NoError(t, err)
	assert.NotNil(t, c.FindGroup("2015/profiles/"))
	assert.Nil(t, c.FindGroup("2015/profiles/up/"))
}
