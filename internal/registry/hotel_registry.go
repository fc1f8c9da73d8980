package registry

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/ivnsm/hotel-reservation/internal/model"
	"github.com/ivnsm/hotel-reservation/internal/store"
)

// HotelRegistry owns the hotel collection and its room-inventory
// counters.  All durable state is produced by rewriting the whole
// collection file after each mutation; a mutex serializes operations
// within the process so callers such as the HTTP handlers cannot
// interleave mutations.  Concurrent writers in other processes are
// not coordinated with (last write wins).
type HotelRegistry struct {
	mu     sync.Mutex
	path   string
	hotels map[string]*model.Hotel
}

// NewHotelRegistry loads the hotel collection from the given file and
// returns a registry bound to it.  Invalid records are skipped with a
// logged warning; a missing or unreadable file yields an empty
// registry.
func NewHotelRegistry(path string) *HotelRegistry {
	r := &HotelRegistry{path: path, hotels: make(map[string]*model.Hotel)}
	r.load()
	return r
}

// load replaces the in-memory collection with the contents of the
// backing file.  Also used as the rollback mechanism by Modify.
func (r *HotelRegistry) load() {
	clear(r.hotels)
	for _, raw := range store.Load(r.path) {
		var h model.Hotel
		if err := json.Unmarshal(raw, &h); err != nil {
			log.Printf("registry: skipping invalid hotel record: %v", err)
			continue
		}
		if err := h.Validate(); err != nil {
			log.Printf("registry: skipping invalid hotel record: %v", err)
			continue
		}
		r.hotels[h.ID] = &h
	}
}

// save persists the whole collection, sorted by identifier so the
// file stays stable across rewrites.
func (r *HotelRegistry) save() error {
	items := make([]*model.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		items = append(items, h)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if err := store.Save(r.path, items); err != nil {
		log.Printf("registry: could not persist hotels: %v", err)
		return err
	}
	return nil
}

// Create registers a new hotel with every room available and persists
// the collection.  Returns a ValidationError when name or address is
// empty or totalRooms is not positive.
func (r *HotelRegistry) Create(name, address string, totalRooms int) (*model.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, err := model.NewHotel(name, address, totalRooms)
	if err != nil {
		return nil, err
	}
	r.hotels[h.ID] = h
	if err := r.save(); err != nil {
		delete(r.hotels, h.ID)
		return nil, err
	}
	out := *h
	return &out, nil
}

// Get returns a copy of the hotel with the given identifier, or
// ErrHotelNotFound.
func (r *HotelRegistry) Get(id string) (*model.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrHotelNotFound
	}
	out := *h
	return &out, nil
}

// List returns all hotels ordered by identifier.
func (r *HotelRegistry) List() []*model.Hotel {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*model.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		out := *h
		items = append(items, &out)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Modify applies the recognized fields of updates (name, address,
// total_rooms, rooms_available) to an existing hotel and re-validates
// the whole entity.  Unknown fields are ignored with a logged warning.
// On validation failure the in-memory state is rolled back by
// reloading the collection from the backing file, so the partial
// mutation is never persisted.
func (r *HotelRegistry) Modify(id string, updates map[string]any) (*model.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrHotelNotFound
	}
	var verr error
	for key, value := range updates {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				h.Name = s
			} else {
				verr = &model.ValidationError{Reason: "name must be a string"}
			}
		case "address":
			if s, ok := value.(string); ok {
				h.Address = s
			} else {
				verr = &model.ValidationError{Reason: "address must be a string"}
			}
		case "total_rooms":
			if n, ok := intValue(value); ok {
				h.TotalRooms = n
			} else {
				verr = &model.ValidationError{Reason: "total_rooms must be an integer"}
			}
		case "rooms_available":
			if n, ok := intValue(value); ok {
				h.RoomsAvailable = n
			} else {
				verr = &model.ValidationError{Reason: "rooms_available must be an integer"}
			}
		default:
			log.Printf("registry: ignoring unknown hotel field %q", key)
		}
	}
	if verr == nil {
		verr = h.Validate()
	}
	if verr != nil {
		r.load()
		return nil, verr
	}
	if err := r.save(); err != nil {
		r.load()
		return nil, err
	}
	out := *h
	return &out, nil
}

// Delete removes a hotel and persists the collection.  Existing
// reservations that reference the hotel are deliberately left alone;
// their later cancellation degrades to a best-effort room release.
func (r *HotelRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return ErrHotelNotFound
	}
	delete(r.hotels, id)
	if err := r.save(); err != nil {
		r.hotels[id] = h
		return err
	}
	return nil
}

// ReserveRoom takes one room from the hotel's availability.  It fails
// with ErrNoRoomsAvailable when the counter is already zero, leaving
// the counter unchanged.  A failed save reverts the counter so the
// in-memory state keeps matching the file.
func (r *HotelRegistry) ReserveRoom(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return ErrHotelNotFound
	}
	if h.RoomsAvailable <= 0 {
		return ErrNoRoomsAvailable
	}
	h.RoomsAvailable--
	if err := r.save(); err != nil {
		h.RoomsAvailable++
		return err
	}
	return nil
}

// ReleaseRoom gives one room back to the hotel's availability.  It
// fails with ErrAllRoomsFree when the counter already equals the
// total; exceeding capacity would signal a bookkeeping bug upstream.
func (r *HotelRegistry) ReleaseRoom(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return ErrHotelNotFound
	}
	if h.RoomsAvailable >= h.TotalRooms {
		return ErrAllRoomsFree
	}
	h.RoomsAvailable++
	if err := r.save(); err != nil {
		h.RoomsAvailable--
		return err
	}
	return nil
}

// intValue coerces a field-map value into an int.  JSON numbers
// arrive as float64, so integral floats are accepted as well.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
