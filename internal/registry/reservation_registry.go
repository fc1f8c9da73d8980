package registry

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/ivnsm/hotel-reservation/internal/model"
	"github.com/ivnsm/hotel-reservation/internal/store"
)

// ReservationRegistry coordinates the reservation lifecycle with the
// hotel and customer registries.  A reservation has exactly two
// states: active (present in the collection) and cancelled (removed).
// Room inventory and reservation existence live in two separate
// collection files with no shared transaction, so multi-step failures
// are repaired manually: when entity validation fails after a room
// was already taken, the room is released back before the failure is
// reported.
//
// Both registry references are optional.  A nil reference degrades
// the corresponding cross-check (and inventory accounting) to a
// no-op, which keeps the registry testable in isolation.
type ReservationRegistry struct {
	mu           sync.Mutex
	path         string
	hotels       *HotelRegistry
	customers    *CustomerRegistry
	reservations map[string]*model.Reservation
}

// NewReservationRegistry loads the reservation collection from the
// given file.  hotels and customers may be nil.
func NewReservationRegistry(path string, hotels *HotelRegistry, customers *CustomerRegistry) *ReservationRegistry {
	r := &ReservationRegistry{
		path:         path,
		hotels:       hotels,
		customers:    customers,
		reservations: make(map[string]*model.Reservation),
	}
	r.load()
	return r
}

func (r *ReservationRegistry) load() {
	clear(r.reservations)
	for _, raw := range store.Load(r.path) {
		var res model.Reservation
		if err := json.Unmarshal(raw, &res); err != nil {
			log.Printf("registry: skipping invalid reservation record: %v", err)
			continue
		}
		if err := res.Validate(); err != nil {
			log.Printf("registry: skipping invalid reservation record: %v", err)
			continue
		}
		r.reservations[res.ID] = &res
	}
}

func (r *ReservationRegistry) save() error {
	items := make([]*model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		items = append(items, res)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if err := store.Save(r.path, items); err != nil {
		log.Printf("registry: could not persist reservations: %v", err)
		return err
	}
	return nil
}

// Create books a room.  The order of operations matters:
//
//  1. verify the customer exists (nothing reserved yet on failure)
//  2. verify the hotel exists
//  3. take a room from the hotel's availability
//  4. build and validate the reservation entity; if this fails the
//     room taken in step 3 is released again so no inventory leaks
//  5. persist the reservation collection
func (r *ReservationRegistry) Create(customerID, hotelID, checkIn, checkOut string) (*model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.customers != nil {
		if _, err := r.customers.Get(customerID); err != nil {
			return nil, err
		}
	}
	if r.hotels != nil {
		if _, err := r.hotels.Get(hotelID); err != nil {
			return nil, err
		}
		if err := r.hotels.ReserveRoom(hotelID); err != nil {
			return nil, err
		}
	}
	res, err := model.NewReservation(customerID, hotelID, checkIn, checkOut)
	if err != nil {
		if r.hotels != nil {
			if relErr := r.hotels.ReleaseRoom(hotelID); relErr != nil {
				log.Printf("registry: could not release room after failed reservation: %v", relErr)
			}
		}
		return nil, err
	}
	r.reservations[res.ID] = res
	if err := r.save(); err != nil {
		// Undo the insert and the room taken in step 3; a reservation
		// the file never saw must not survive in memory either.
		delete(r.reservations, res.ID)
		if r.hotels != nil {
			if relErr := r.hotels.ReleaseRoom(hotelID); relErr != nil {
				log.Printf("registry: could not release room after failed save: %v", relErr)
			}
		}
		return nil, err
	}
	out := *res
	return &out, nil
}

// Cancel removes a reservation and gives its room back to the hotel.
// The release is best-effort: if the hotel has been deleted in the
// meantime or its counter is already at capacity, the failure is
// logged and the cancellation still proceeds.
func (r *ReservationRegistry) Cancel(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return ErrReservationNotFound
	}
	if r.hotels != nil {
		if err := r.hotels.ReleaseRoom(res.HotelID); err != nil {
			log.Printf("registry: could not release room for cancelled reservation %s: %v", id, err)
		}
	}
	delete(r.reservations, id)
	if err := r.save(); err != nil {
		// Keep the reservation active when the removal never reached
		// the file, otherwise a restart would release its room twice.
		r.reservations[id] = res
		if r.hotels != nil {
			if resErr := r.hotels.ReserveRoom(res.HotelID); resErr != nil {
				log.Printf("registry: could not re-take room after failed save: %v", resErr)
			}
		}
		return err
	}
	return nil
}

// Get returns a copy of the reservation with the given identifier, or
// ErrReservationNotFound.
func (r *ReservationRegistry) Get(id string) (*model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	out := *res
	return &out, nil
}

// List returns all active reservations ordered by identifier.
func (r *ReservationRegistry) List() []*model.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		out := *res
		items = append(items, &out)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
