package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PutGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("john-smith-a1b2c3d4", "<html>hi</html>"))

	html, err := store.Get("john-smith-a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "<html>hi</html>", html)
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("never-deployed")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_RejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Put("../escape", "<html></html>"))

	_, err = store.Get("../escape")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("slug-1", "first"))
	require.NoError(t, store.Put("slug-1", "second"))

	html, err := store.Get("slug-1")
	require.NoError(t, err)
	assert.Equal(t, "second", html)
}

func TestGenerateSlug(t *testing.T) {
	slugRe := regexp.MustCompile(`^john-smith-[0-9a-f]{8}$`)

	slug := GenerateSlug("John Smith")

	assert.Regexp(t, slugRe, slug)
}

func TestGenerateSlug_FoldsDiacritics(t *testing.T) {
	slug := GenerateSlug("José Gracía")

	assert.True(t, strings.HasPrefix(slug, "jose-gracia-"), slug)
}

func TestGenerateSlug_EmptyName(t *testing.T) {
	slug := GenerateSlug("星野")

	assert.True(t, strings.HasPrefix(slug, "portfolio-"), slug)
}

func TestGenerateSlug_SameNameDistinct(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first := GenerateSlug("John Smith")
	second := GenerateSlug("John Smith")
	assert.NotEqual(t, first, second)

	require.NoError(t, store.Put(first, "first portfolio"))
	require.NoError(t, store.Put(second, "second portfolio"))

	html, err := store.Get(first)
	require.NoError(t, err)
	assert.Equal(t, "first portfolio", html)

	html, err = store.Get(second)
	require.NoError(t, err)
	assert.Equal(t, "second portfolio", html)
}
