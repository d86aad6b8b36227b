package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.roshambo/prefs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".roshambo", "prefs.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreGetUnset(t *testing.T) {
	store := openTemp(t)

	_, err := store.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}

	v, err := store.GetOr("missing", "fallback")
	if err != nil {
		t.Fatalf("GetOr() failed: %v", err)
	}
	if v != "fallback" {
		t.Errorf("GetOr() = %q, want fallback", v)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	store := openTemp(t)

	if err := store.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, err := store.Get(KeyTheme)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != "dark" {
		t.Errorf("Get() = %q, want dark", v)
	}

	all, err := store.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 setting, got %d", len(all))
	}
}

func TestStoreThemeAndMode(t *testing.T) {
	store := openTemp(t)

	if got := store.Theme("light"); got != "light" {
		t.Errorf("Theme() default = %q, want light", got)
	}
	if got := store.Mode("pvc"); got != "pvc" {
		t.Errorf("Mode() default = %q, want pvc", got)
	}

	if err := store.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme() failed: %v", err)
	}
	if err := store.SetMode("pvp"); err != nil {
		t.Fatalf("SetMode() failed: %v", err)
	}

	if got := store.Theme("light"); got != "dark" {
		t.Errorf("Theme() = %q, want dark", got)
	}
	if got := store.Mode("pvc"); got != "pvp" {
		t.Errorf("Mode() = %q, want pvp", got)
	}
}

func TestStoreAllOrdered(t *testing.T) {
	store := openTemp(t)

	_ = store.SetTheme("dark")
	_ = store.SetMode("pvp")

	all, err := store.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 settings, got %d", len(all))
	}
	if all[0].Key != KeyMode || all[1].Key != KeyTheme {
		t.Errorf("Unexpected order: %s, %s", all[0].Key, all[1].Key)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTemp(t)

	_ = store.SetTheme("dark")
	if err := store.Delete(KeyTheme); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete(KeyTheme); err != nil {
		t.Fatalf("Delete() of unset key failed: %v", err)
	}
	if got := store.Theme("light"); got != "light" {
		t.Errorf("Theme() after delete = %q, want light", got)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	_ = store.SetMode("pvp")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := store.Mode("pvc"); got != "pvp" {
		t.Errorf("Mode() after reopen = %q, want pvp", got)
	}
}
