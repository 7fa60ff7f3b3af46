package audio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PutGetHas(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	const id = "nouns/der Apfel.mp3"
	assert.False(t, store.Has(id))

	require.NoError(t, store.Put(id, []byte("clip")))
	assert.True(t, store.Has(id))

	data, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("clip"), data)
}

func TestFileStore_List(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("letters/b.mp3", []byte("b")))
	require.NoError(t, store.Put("letters/a.mp3", []byte("a")))
	require.NoError(t, store.Put("numbers/1.mp3", []byte("1")))

	ids, err := store.List("letters")
	require.NoError(t, err)
	assert.Equal(t, []string{"letters/a.mp3", "letters/b.mp3"}, ids)

	none, err := store.List("verbs")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileStore_IdsStayUnderRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	require.NoError(t, store.Put("../escape.mp3", []byte("x")))
	assert.True(t, store.Has("../escape.mp3"))

	rel, err := filepath.Rel(root, store.filePath("../escape.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "escape.mp3", rel)
}
