package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_CreateTempOpenRemove(t *testing.T) {
	dir := t.TempDir()
	a := New()

	f, err := a.CreateTemp(dir, "random_ascii*txt")
	require.NoError(t, err)

	name := f.Name()
	assert.Equal(t, dir, filepath.Dir(name))
	assert.True(t, strings.HasPrefix(filepath.Base(name), "random_ascii"))
	assert.True(t, strings.HasSuffix(name, "txt"))

	_, err = f.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := a.Open(name)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "payload", string(data))

	require.NoError(t, a.Remove(name))
	_, err = a.Stat(name)
	assert.True(t, os.IsNotExist(err))
}

func TestAdapter_CreateTempDefaultDir(t *testing.T) {
	a := NewWithFs(afero.NewMemMapFs())

	f, err := a.CreateTemp("", "random_ascii*txt")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, filepath.Clean(a.TempDir()), filepath.Dir(f.Name()))
}

func TestAdapter_CreateTempUnique(t *testing.T) {
	a := NewWithFs(afero.NewMemMapFs())

	f1, err := a.CreateTemp("/tmp", "random_ascii*txt")
	require.NoError(t, err)
	f2, err := a.CreateTemp("/tmp", "random_ascii*txt")
	require.NoError(t, err)

	assert.NotEqual(t, f1.Name(), f2.Name())
}

func TestAdapter_ReadOnly(t *testing.T) {
	a := NewWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	f, err := a.CreateTemp("/tmp", "random_ascii*txt")
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestAdapter_RemoveMissing(t *testing.T) {
	a := NewWithFs(afero.NewMemMapFs())

	err := a.Remove("/tmp/does-not-exist")
	assert.True(t, os.IsNotExist(err))
}
