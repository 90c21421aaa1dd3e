package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	cm, err := CreateMigration(dir, "Create Expenses Table")
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(cm.UpPath), "create_expenses_table.up.sql")
	assert.Contains(t, filepath.Base(cm.DownPath), "create_expenses_table.down.sql")

	for _, path := range []string{cm.UpPath, cm.DownPath} {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Create Expenses Table")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Create Expenses Table", "create_expenses_table"},
		{"add-index--on-date", "add_index_on_date"},
		{"trailing space ", "trailing_space"},
		{"MixedCase123", "mixedcase123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in))
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Contains(t, migrations[0], "first")

	empty, err := ListMigrations(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
