package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *UploadStore {
	t.Helper()

	store, err := NewUploadStore(filepath.Join(t.TempDir(), "uploads"), []string{".xlsx", "xls"})
	require.NoError(t, err)
	return store
}

func TestUploadStore_Validate(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name        string
		filename    string
		expectedExt string
		expectedErr error
	}{
		{name: "Arquivo xlsx", filename: "relatorio.xlsx", expectedExt: ".xlsx"},
		{name: "Extensão em maiúsculas", filename: "RELATORIO.XLS", expectedExt: ".xls"},
		{name: "Nome vazio", filename: "  ", expectedErr: ErrEmptyFilename},
		{name: "Extensão não permitida", filename: "relatorio.csv", expectedErr: ErrExtensionNotAllowed},
		{name: "Sem extensão", filename: "relatorio", expectedErr: ErrExtensionNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := store.Validate(tt.filename)
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedExt, ext)
		})
	}
}

func TestUploadStore_SaveAndRelease(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save("../../relatorio.xlsx", strings.NewReader("conteúdo"))
	require.NoError(t, err)

	assert.Equal(t, store.Dir(), filepath.Dir(stored.Path), "arquivo deve ficar no diretório de upload")
	assert.True(t, strings.HasPrefix(filepath.Base(stored.Path), FilePrefix))
	assert.Equal(t, ".xlsx", filepath.Ext(stored.Path))
	assert.Equal(t, "relatorio.xlsx", stored.OriginalName)
	assert.Equal(t, int64(len("conteúdo")), stored.Size)

	content, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "conteúdo", string(content))

	store.Release(stored)
	_, err = os.Stat(stored.Path)
	assert.True(t, os.IsNotExist(err))

	// Segunda chamada não deve falhar
	store.Release(stored)
	store.Release(nil)
}

func TestUploadStore_SaveRejeitaExtensao(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("relatorio.pdf", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrExtensionNotAllowed))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
