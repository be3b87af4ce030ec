package session

import (
	"path/filepath"
	"testing"
)

func setupStore(t *testing.T) *Store {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDefaultsWhenUnset(t *testing.T) {
	store := setupStore(t)
	if got := store.UserID(); got != -1 {
		t.Errorf("id: got %d, want -1", got)
	}
	if got := store.UserName(); got != "Guest" {
		t.Errorf("name: got %q, want Guest", got)
	}
	if got := store.UserRole(); got != "No role" {
		t.Errorf("role: got %q, want No role", got)
	}
	if got := store.UserClass(); got != "" {
		t.Errorf("class: got %q, want empty", got)
	}
}

func TestSaveUserRoundTrip(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveUser(5, "Ann", "admin", "7-B"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := store.UserID(); got != 5 {
		t.Errorf("id: got %d", got)
	}
	if got := store.UserName(); got != "Ann" {
		t.Errorf("name: got %q", got)
	}
	if got := store.UserRole(); got != "admin" {
		t.Errorf("role: got %q", got)
	}
	if got := store.UserClass(); got != "7-B" {
		t.Errorf("class: got %q", got)
	}
}

func TestSaveUserOverwrites(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveUser(5, "Ann", "admin", "7-B"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveUser(6, "Bea", "student", "8-A"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if store.UserID() != 6 || store.UserName() != "Bea" {
		t.Fatalf("second save did not replace the record")
	}
}

func TestClearRestoresDefaults(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveUser(5, "Ann", "admin", "7-B"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.UserID() != DefaultUserID || store.UserName() != DefaultName {
		t.Fatalf("clear must restore defaults")
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":   RoleAdmin,
		"teacher": RoleStudent,
		"student": RoleStudent,
		"":        RoleNone,
		"No role": RoleNone,
	}
	for input, want := range cases {
		if got := ParseRole(input); got != want {
			t.Errorf("ParseRole(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCapabilities(t *testing.T) {
	admin := Session{UserID: 1, Role: RoleAdmin}
	student := Session{UserID: 2, Role: RoleStudent}
	if !admin.CanDeleteProduct() || !admin.CanEditProduct() || !admin.CanModerateComplaints() {
		t.Errorf("admin capabilities missing")
	}
	if student.CanDeleteProduct() || student.CanEditProduct() || student.CanModerateComplaints() {
		t.Errorf("student must have no mutation capabilities")
	}
}

func TestFromStore(t *testing.T) {
	store := setupStore(t)
	if sess := FromStore(store); sess.LoggedIn() {
		t.Fatalf("empty store must not produce a logged-in session")
	}
	if err := store.SaveUser(5, "Ann", "admin", "7-B"); err != nil {
		t.Fatalf("save: %v", err)
	}
	sess := FromStore(store)
	if !sess.LoggedIn() || sess.Role != RoleAdmin || sess.Name != "Ann" {
		t.Fatalf("session not restored: %+v", sess)
	}
}
