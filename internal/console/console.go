// Package console implements the interactive text surface: a
// single-prompt REPL where short commands manage hotels, customers
// and reservations through the registries.  Every failed operation is
// reported and the loop continues; nothing here is fatal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ivnsm/hotel-reservation/internal/registry"
)

const width = 72

// Console drives the REPL over the three registries.
type Console struct {
	Hotels       *registry.HotelRegistry
	Customers    *registry.CustomerRegistry
	Reservations *registry.ReservationRegistry

	in  *bufio.Reader
	out io.Writer
}

// New builds a console bound to the given registries and streams.
func New(hotels *registry.HotelRegistry, customers *registry.CustomerRegistry, reservations *registry.ReservationRegistry, in io.Reader, out io.Writer) *Console {
	return &Console{
		Hotels:       hotels,
		Customers:    customers,
		Reservations: reservations,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run reads commands until "q" or end of input.
func (c *Console) Run() {
	c.help()
	for {
		fmt.Fprint(c.out, "\n> ")
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		switch strings.TrimSpace(line) {
		case "":
		case "?", "help":
			c.help()
		case "s", "status":
			c.status()
		case "hl":
			c.hotelList()
		case "ha":
			c.hotelAdd()
		case "he":
			c.hotelEdit()
		case "hd":
			c.hotelDelete()
		case "cl":
			c.customerList()
		case "ca":
			c.customerAdd()
		case "ce":
			c.customerEdit()
		case "cd":
			c.customerDelete()
		case "rl":
			c.reservationList()
		case "rb":
			c.reservationBook()
		case "rc":
			c.reservationCancel()
		case "q", "quit", "exit":
			fmt.Fprintln(c.out, "Bye.")
			return
		default:
			fmt.Fprintln(c.out, "  Unknown command. Type ? for help.")
		}
	}
}

func (c *Console) help() {
	fmt.Fprintln(c.out, strings.Repeat("━", width))
	fmt.Fprintln(c.out, "Hotel Reservation System")
	fmt.Fprintln(c.out, "  s  status          ?  help            q  quit")
	fmt.Fprintln(c.out, "  hl list hotels     ha add   he edit   hd delete")
	fmt.Fprintln(c.out, "  cl list customers  ca add   ce edit   cd delete")
	fmt.Fprintln(c.out, "  rl list resvns     rb book  rc cancel")
	fmt.Fprintln(c.out, strings.Repeat("━", width))
}

func (c *Console) status() {
	hotels := c.Hotels.List()
	avail, total := 0, 0
	for _, h := range hotels {
		avail += h.RoomsAvailable
		total += h.TotalRooms
	}
	fmt.Fprintf(c.out, "  Hotels: %d  |  Customers: %d  |  Reservations: %d  |  Rooms: %d/%d free\n",
		len(hotels), len(c.Customers.List()), len(c.Reservations.List()), avail, total)
}

// ask prompts for a value; an empty answer keeps def.
func (c *Console) ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(c.out, "  %s [%s]: ", label, def)
	} else {
		fmt.Fprintf(c.out, "  %s: ", label)
	}
	line, _ := c.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func (c *Console) hotelList() {
	for i, h := range c.Hotels.List() {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, h)
	}
	if len(c.Hotels.List()) == 0 {
		fmt.Fprintln(c.out, "  (empty)")
	}
}

func (c *Console) hotelAdd() {
	name := c.ask("Name", "")
	if name == "" {
		fmt.Fprintln(c.out, "  Cancelled.")
		return
	}
	address := c.ask("Address", "")
	rooms, err := strconv.Atoi(c.ask("Total rooms", ""))
	if err != nil {
		fmt.Fprintln(c.out, "  ! Total rooms must be a number.")
		return
	}
	hotel, err := c.Hotels.Create(name, address, rooms)
	if err != nil {
		fmt.Fprintf(c.out, "  ! Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  + Created: %s\n", hotel)
}

func (c *Console) hotelEdit() {
	hotel, err := c.Hotels.Get(c.ask("Hotel ID", ""))
	if err != nil {
		fmt.Fprintf(c.out, "  ! %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  Editing %s  (Enter = keep)\n", hotel.Name)
	rooms, err := strconv.Atoi(c.ask("Total rooms", strconv.Itoa(hotel.TotalRooms)))
	if err != nil {
		fmt.Fprintln(c.out, "  ! Total rooms must be a number.")
		return
	}
	updated, err := c.Hotels.Modify(hotel.ID, map[string]any{
		"name":        c.ask("Name", hotel.Name),
		"address":     c.ask("Address", hotel.Address),
		"total_rooms": rooms,
	})
	if err != nil {
		fmt.Fprintf(c.out, "  ! Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  + Updated: %s\n", updated)
}

func (c *Console) hotelDelete() {
	id := c.ask("Hotel ID", "")
	if err := c.Hotels.Delete(id); err != nil {
		fmt.Fprintf(c.out, "  ! %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "  + Deleted.")
}

func (c *Console) customerList() {
	customers := c.Customers.List()
	for i, cust := range customers {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, cust)
	}
	if len(customers) == 0 {
		fmt.Fprintln(c.out, "  (empty)")
	}
}

func (c *Console) customerAdd() {
	name := c.ask("Name", "")
	if name == "" {
		fmt.Fprintln(c.out, "  Cancelled.")
		return
	}
	cust, err := c.Customers.Create(name, c.ask("Email", ""))
	if err != nil {
		fmt.Fprintf(c.out, "  ! Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  + Created: %s\n", cust)
}

func (c *Console) customerEdit() {
	cust, err := c.Customers.Get(c.ask("Customer ID", ""))
	if err != nil {
		fmt.Fprintf(c.out, "  ! %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  Editing %s  (Enter = keep)\n", cust.Name)
	updated, err := c.Customers.Modify(cust.ID, map[string]any{
		"name":  c.ask("Name", cust.Name),
		"email": c.ask("Email", cust.Email),
	})
	if err != nil {
		fmt.Fprintf(c.out, "  ! Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  + Updated: %s\n", updated)
}

func (c *Console) customerDelete() {
	id := c.ask("Customer ID", "")
	if err := c.Customers.Delete(id); err != nil {
		fmt.Fprintf(c.out, "  ! %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "  + Deleted.")
}

func (c *Console) reservationList() {
	reservations := c.Reservations.List()
	for i, r := range reservations {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, r)
	}
	if len(reservations) == 0 {
		fmt.Fprintln(c.out, "  (empty)")
	}
}

func (c *Console) reservationBook() {
	res, err := c.Reservations.Create(
		c.ask("Customer ID", ""),
		c.ask("Hotel ID", ""),
		c.ask("Check-in (YYYY-MM-DD)", ""),
		c.ask("Check-out (YYYY-MM-DD)", ""),
	)
	if err != nil {
		fmt.Fprintf(c.out, "  ! Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "  + Booked: %s\n", res)
}

func (c *Console) reservationCancel() {
	id := c.ask("Reservation ID", "")
	if err := c.Reservations.Cancel(id); err != nil {
		fmt.Fprintf(c.out, "  ! %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "  + Cancelled, room released.")
}
