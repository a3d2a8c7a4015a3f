package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/shoplist/internal/store"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// env points storage at a fresh temp dir and disables colour.
func env(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SHOPLIST_STORAGE_BACKEND", "json")
	t.Setenv("SHOPLIST_STORAGE_PATH", dir)
	t.Setenv("SHOPLIST_UI_COLOR", "never")
	t.Setenv("SHOPLIST_UI_THEME", "classic")
	return dir
}

func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	args = append(args, "--config", filepath.Join(dir, "shoplist.yaml"))
	code := Execute(args, &out, &errb)
	return result{code, out.String(), errb.String()}
}

func dataFile(dir string) string {
	return filepath.Join(dir, store.StorageKey+".json")
}

func TestListShowsSeedWithoutWriting(t *testing.T) {
	dir := env(t)
	r := run(t, dir, "ls")
	require.Equal(t, 0, r.code, r.stderr)

	assert.Contains(t, r.stdout, " 1. ☐ Leite [Mercado] R$ 5,99")
	assert.Contains(t, r.stdout, " 2. ☐ Pão x2 [Mercado] R$ 9,00")
	assert.Contains(t, r.stdout, " 4. ☐ Pilhas x4 [Eletrônicos] R$ 51,60")
	assert.Contains(t, r.stdout, "Total 4")

	_, err := os.Stat(dataFile(dir))
	assert.True(t, os.IsNotExist(err))
}

func TestAdd(t *testing.T) {
	dir := env(t)
	r := run(t, dir, "add", "Leite", "de", "coco", "-q", "2", "-p", "3,50", "-c", "household")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "2 Leite de coco added")

	b, err := os.ReadFile(dataFile(dir))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "Leite de coco"`)

	r = run(t, dir, "ls")
	assert.Contains(t, r.stdout, " 5. ☐ Leite de coco x2 [Casa] R$ 7,00")
}

func TestAddWithoutPrice(t *testing.T) {
	dir := env(t)
	require.Equal(t, 0, run(t, dir, "add", "Sal").code)
	r := run(t, dir, "ls")
	assert.Contains(t, r.stdout, " 5. ☐ Sal [Mercado]")
	assert.NotContains(t, r.stdout, "Sal [Mercado] R$")
}

func TestAddRejectsBadInput(t *testing.T) {
	tests := map[string]struct {
		args []string
		msg  string
	}{
		"blank name":       {[]string{"add", "   "}, "empty name"},
		"no name":          {[]string{"add"}, "add:"},
		"quantity too big": {[]string{"add", "x", "-q", "100"}, "quantity"},
		"quantity zero":    {[]string{"add", "x", "-q", "0"}, "quantity"},
		"bad price":        {[]string{"add", "x", "-p", "abc"}, "not a price"},
		"negative price":   {[]string{"add", "x", "-p", "-2"}, "price"},
		"bad category":     {[]string{"add", "x", "-c", "toys"}, "unknown category"},
		"bad flag":         {[]string{"add", "x", "--nope"}, "unknown flag"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := env(t)
			r := run(t, dir, tt.args...)
			assert.Equal(t, 2, r.code)
			assert.Contains(t, r.stderr, tt.msg)

			_, err := os.Stat(dataFile(dir))
			assert.True(t, os.IsNotExist(err), "nothing may be written")
		})
	}
}

func TestDone(t *testing.T) {
	dir := env(t)

	r := run(t, dir, "done", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Leite marked completed")

	r = run(t, dir, "ls")
	assert.Contains(t, r.stdout, " 1. ☑ Leite")

	r = run(t, dir, "done", "1")
	assert.Contains(t, r.stdout, "Leite marked active again")
}

func TestDoneByID(t *testing.T) {
	dir := env(t)
	r := run(t, dir, "done", "--id", "2")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Pão marked completed")

	r = run(t, dir, "done", "--id", "missing")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `no item with id "missing"`)
}

func TestDoneBadIndex(t *testing.T) {
	dir := env(t)

	r := run(t, dir, "done", "9")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "index out of range: have 4, got 9")

	r = run(t, dir, "done", "abc")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "not a number")

	r = run(t, dir, "done")
	assert.Equal(t, 2, r.code)
}

func TestRemove(t *testing.T) {
	dir := env(t)
	r := run(t, dir, "rm", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "removed Leite")

	r = run(t, dir, "ls")
	assert.NotContains(t, r.stdout, "☐ Leite")
	assert.Contains(t, r.stdout, " 1. ☐ Pão")
}

func TestListTipDoesNotNameSeedItems(t *testing.T) {
	dir := env(t)
	require.Equal(t, 0, run(t, dir, "rm", "1").code)

	r := run(t, dir, "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Tip: add with")
	assert.NotContains(t, r.stdout, "Leite")
}

func TestClear(t *testing.T) {
	dir := env(t)
	require.Equal(t, 0, run(t, dir, "done", "1").code)
	require.Equal(t, 0, run(t, dir, "done", "3").code)

	r := run(t, dir, "clear")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "cleared 2 completed items")

	r = run(t, dir, "ls")
	assert.Contains(t, r.stdout, "Total 2")
	assert.NotContains(t, r.stdout, "Sabonete")
}

func TestListGroupAndFilter(t *testing.T) {
	dir := env(t)
	require.Equal(t, 0, run(t, dir, "done", "2").code)

	r := run(t, dir, "ls", "--group")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Ativos (3)")
	assert.Contains(t, r.stdout, "Concluídos (1)")

	r = run(t, dir, "ls", "-c", "household")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, " 3. ☐ Sabonete")
	assert.NotContains(t, r.stdout, "☐ Leite")
	assert.NotContains(t, r.stdout, "Pão")
	assert.Contains(t, r.stdout, "filter: Casa")

	r = run(t, dir, "ls", "-c", "roupas")
	assert.Contains(t, r.stdout, "your shopping list is empty")

	r = run(t, dir, "ls", "-c", "toys")
	assert.Equal(t, 2, r.code)
}

func TestCorruptDataFallsBackToSeed(t *testing.T) {
	dir := env(t)
	require.NoError(t, os.WriteFile(dataFile(dir), []byte("{oops"), 0o644))

	r := run(t, dir, "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Pilhas")
	assert.Contains(t, r.stdout, "Total 4")
	assert.Contains(t, r.stderr, "stored list is corrupt")

	// A missing file is not an error.
	require.NoError(t, os.Remove(dataFile(dir)))
	r = run(t, dir, "ls")
	require.Equal(t, 0, r.code)
	assert.Empty(t, r.stderr)
}

func TestSaveFailureExitsOne(t *testing.T) {
	dir := env(t)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	t.Setenv("SHOPLIST_STORAGE_PATH", blocker)

	r := run(t, dir, "add", "Milk")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "save:")

	r = run(t, dir, "ls")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stderr, "showing the default items")
}

func TestSQLiteBackend(t *testing.T) {
	dir := env(t)
	t.Setenv("SHOPLIST_STORAGE_BACKEND", "sqlite")
	t.Setenv("SHOPLIST_STORAGE_PATH", filepath.Join(dir, "list.db"))

	require.Equal(t, 0, run(t, dir, "add", "Arroz", "-p", "20").code)
	r := run(t, dir, "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, " 5. ☐ Arroz [Mercado] R$ 20,00")

	_, err := os.Stat(filepath.Join(dir, "list.db"))
	assert.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := env(t)
	t.Setenv("SHOPLIST_STORAGE_BACKEND", "")
	require.NoError(t, os.Unsetenv("SHOPLIST_STORAGE_BACKEND"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shoplist.yaml"),
		[]byte("storage:\n  backend: memory\n"), 0o644))

	require.Equal(t, 0, run(t, dir, "add", "Arroz").code)
	_, err := os.Stat(dataFile(dir))
	assert.True(t, os.IsNotExist(err), "memory backend writes nothing")
}

func TestUnknownCommand(t *testing.T) {
	dir := env(t)
	r := run(t, dir, "frobnicate")
	assert.Equal(t, 2, r.code)
}
