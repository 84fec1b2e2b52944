package glossary

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	for _, input := range []string{"net", "NET", "Net", "  nEt "} {
		assert.Equal(t, "NET", NormalizeKey(input), "input %q", input)
	}
}

func TestGlossaryOperationsNormalizeKeys(t *testing.T) {
	g := Glossary{}
	g.Put("api", Entry{FullName: "Application Programming Interface"})

	require.True(t, g.Has("API"))
	entry, ok := g.Get("Api")
	require.True(t, ok)
	assert.Equal(t, "Application Programming Interface", entry.FullName)

	g.Put("API", Entry{FullName: "replaced"})
	assert.Len(t, g, 1)

	assert.True(t, g.Remove("aPi"))
	assert.False(t, g.Remove("api"))
	assert.Empty(t, g)
}

func TestKeysSorted(t *testing.T) {
	g := Glossary{"ZEBRA": {}, "ALPHA": {}, "MIKE": {}}
	assert.Equal(t, []string{"ALPHA", "MIKE", "ZEBRA"}, g.Keys())
	assert.Empty(t, Glossary{}.Keys())
}

func TestStorageErrorUnwraps(t *testing.T) {
	err := error(&StorageError{Op: "load", Path: "/tmp/x.yaml", Err: fs.ErrPermission})
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "failed to load /tmp/x.yaml")

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "load", storageErr.Op)
}
