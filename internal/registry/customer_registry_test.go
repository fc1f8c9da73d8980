package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func customerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "customers.json")
}

func TestCustomerCreateAndGet(t *testing.T) {
	r := NewCustomerRegistry(customerPath(t))
	c, err := r.Create("Alice Johnson", "alice@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := r.Get(c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice Johnson" || got.Email != "alice@example.com" {
		t.Fatalf("got %+v", got)
	}
}

func TestCustomerCreateRejectsBadEmail(t *testing.T) {
	r := NewCustomerRegistry(customerPath(t))
	if _, err := r.Create("Bob", "bob-at-example.com"); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := r.Create("Bob", "bob@nodot"); err == nil {
		t.Fatal("expected validation error")
	}
	if len(r.List()) != 0 {
		t.Fatal("failed creations must not be stored")
	}
}

func TestCustomerModifyRollsBackOnValidationFailure(t *testing.T) {
	path := customerPath(t)
	r := NewCustomerRegistry(path)
	c, _ := r.Create("Alice", "alice@example.com")

	if _, err := r.Modify(c.ID, map[string]any{"name": "Mallory", "email": "broken"}); err == nil {
		t.Fatal("expected validation error")
	}
	got, err := r.Get(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Alice" || got.Email != "alice@example.com" {
		t.Fatalf("in-memory state not rolled back: %+v", got)
	}

	fresh := NewCustomerRegistry(path)
	onDisk, err := fresh.Get(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if onDisk.Name != "Alice" {
		t.Fatalf("partial mutation was persisted: %+v", onDisk)
	}
}

func TestCustomerModifyIgnoresUnknownFields(t *testing.T) {
	r := NewCustomerRegistry(customerPath(t))
	c, _ := r.Create("Alice", "alice@example.com")
	got, err := r.Modify(c.ID, map[string]any{"nickname": "Al", "email": "al@example.com"})
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if got.Email != "al@example.com" {
		t.Fatalf("recognized field not applied: %+v", got)
	}
}

func TestCustomerDelete(t *testing.T) {
	r := NewCustomerRegistry(customerPath(t))
	c, _ := r.Create("Alice", "alice@example.com")
	if err := r.Delete(c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(c.ID); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if err := r.Delete(c.ID); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestCustomerLoadSkipsMalformedRecords(t *testing.T) {
	path := customerPath(t)
	content := `[
  {"customer_id": "c001", "name": "Alice", "email": "alice@example.com"},
  "not even an object",
  {"customer_id": "c002", "name": "Bob", "email": "no-at-sign"}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewCustomerRegistry(path)
	customers := r.List()
	if len(customers) != 1 {
		t.Fatalf("loaded %d customers, want 1", len(customers))
	}
	if customers[0].ID != "c001" {
		t.Fatalf("wrong record survived: %+v", customers[0])
	}
}
