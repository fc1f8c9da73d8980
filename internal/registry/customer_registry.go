package registry

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/ivnsm/hotel-reservation/internal/model"
	"github.com/ivnsm/hotel-reservation/internal/store"
)

// CustomerRegistry owns the customer collection.  It mirrors the
// hotel registry's persistence discipline: whole-collection rewrite
// after each mutation, rollback by reload on failed modification.
type CustomerRegistry struct {
	mu        sync.Mutex
	path      string
	customers map[string]*model.Customer
}

// NewCustomerRegistry loads the customer collection from the given
// file and returns a registry bound to it.
func NewCustomerRegistry(path string) *CustomerRegistry {
	r := &CustomerRegistry{path: path, customers: make(map[string]*model.Customer)}
	r.load()
	return r
}

func (r *CustomerRegistry) load() {
	clear(r.customers)
	for _, raw := range store.Load(r.path) {
		var c model.Customer
		if err := json.Unmarshal(raw, &c); err != nil {
			log.Printf("registry: skipping invalid customer record: %v", err)
			continue
		}
		if err := c.Validate(); err != nil {
			log.Printf("registry: skipping invalid customer record: %v", err)
			continue
		}
		r.customers[c.ID] = &c
	}
}

func (r *CustomerRegistry) save() error {
	items := make([]*model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if err := store.Save(r.path, items); err != nil {
		log.Printf("registry: could not persist customers: %v", err)
		return err
	}
	return nil
}

// Create registers a new customer and persists the collection.
func (r *CustomerRegistry) Create(name, email string) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, err := model.NewCustomer(name, email)
	if err != nil {
		return nil, err
	}
	r.customers[c.ID] = c
	if err := r.save(); err != nil {
		delete(r.customers, c.ID)
		return nil, err
	}
	out := *c
	return &out, nil
}

// Get returns a copy of the customer with the given identifier, or
// ErrCustomerNotFound.
func (r *CustomerRegistry) Get(id string) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	out := *c
	return &out, nil
}

// List returns all customers ordered by identifier.
func (r *CustomerRegistry) List() []*model.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out := *c
		items = append(items, &out)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Modify applies the recognized fields of updates (name, email) to an
// existing customer with the same warn-on-unknown-field and
// rollback-on-validation-failure policy as the hotel registry.
func (r *CustomerRegistry) Modify(id string, updates map[string]any) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	var verr error
	for key, value := range updates {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				c.Name = s
			} else {
				verr = &model.ValidationError{Reason: "name must be a string"}
			}
		case "email":
			if s, ok := value.(string); ok {
				c.Email = s
			} else {
				verr = &model.ValidationError{Reason: "email must be a string"}
			}
		default:
			log.Printf("registry: ignoring unknown customer field %q", key)
		}
	}
	if verr == nil {
		verr = c.Validate()
	}
	if verr != nil {
		r.load()
		return nil, verr
	}
	if err := r.save(); err != nil {
		r.load()
		return nil, err
	}
	out := *c
	return &out, nil
}

// Delete removes a customer and persists the collection.  Reservations
// referencing the customer are left dangling on purpose.
func (r *CustomerRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return ErrCustomerNotFound
	}
	delete(r.customers, id)
	if err := r.save(); err != nil {
		r.customers[id] = c
		return err
	}
	return nil
}
