package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreWithFs(fs, "configuration.json")

	in := validConfig()
	in.Authentication.Token = "jwt"
	in.AutoBook = AutoBook{LocationID: 10, GroupID: 20, FloorID: 30, UserID: 77, WSTypeID: 1}

	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Save replaces the file whole, no temp file left behind.
	exists, err := afero.Exists(fs, "configuration.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := NewStoreWithFs(afero.NewMemMapFs(), "configuration.json")
		_, err := store.Load()
		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "configuration.json", []byte("{"), 0o600))

		store := NewStoreWithFs(fs, "configuration.json")
		_, err := store.Load()
		require.Error(t, err)
	})

	t.Run("raw load defers validation so flags can fill in the email", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "configuration.json",
			[]byte(`{"authentication":{"unique_key":"tenant.condecosoftware.com"}}`), 0o600))

		store := NewStoreWithFs(fs, "configuration.json")
		_, err := store.Load()
		require.Error(t, err)

		cfg, err := store.LoadRaw()
		require.NoError(t, err)
		require.Error(t, cfg.Validate())

		cfg.Authentication.Email = "user@example.com"
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "configuration.json",
			[]byte(`{"authentication":{"email":"user@example.com"}}`), 0o600))

		store := NewStoreWithFs(fs, "configuration.json")
		_, err := store.Load()
		require.Error(t, err)
	})

	t.Run("preserves unknown-field-free shape the other tools wrote", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		doc := `{
    "authentication": {
        "email": "user@example.com",
        "unique_key": "tenant.condecosoftware.com",
        "validation_key": "123456"
    },
    "auto_book": {
        "location_id": 10,
        "group_id": 20,
        "floor_id": 30,
        "user_id": 77,
        "ws_type_id": 1
    },
    "examples": {}
}`
		require.NoError(t, afero.WriteFile(fs, "configuration.json", []byte(doc), 0o600))

		store := NewStoreWithFs(fs, "configuration.json")
		cfg, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, StateNeedExchange, cfg.Authentication.State())
		assert.Equal(t, 10, cfg.AutoBook.LocationID)
	})
}

func TestStoreSaveCreatesParentDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreWithFs(fs, "nested/dir/configuration.json")

	require.NoError(t, store.Save(validConfig()))

	exists, err := afero.Exists(fs, "nested/dir/configuration.json")
	require.NoError(t, err)
	assert.True(t, exists)
}
