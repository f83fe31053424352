package entities

import "time"

// Infrastructure item vocabulary offered on the event forms. Items are free
// strings; this list is only the default set of checkboxes.
const (
	ItemSeating    = "Seating"
	ItemStage      = "Stage"
	ItemFreeDrinks = "Free Drinks"
	ItemOpenFood   = "Open Food"
	ItemGiveaways  = "Giveaways"
)

// InfrastructureItems lists the default item vocabulary in form order.
func InfrastructureItems() []string {
	return []string{ItemSeating, ItemStage, ItemFreeDrinks, ItemOpenFood, ItemGiveaways}
}

type Event struct {
	ID          int64
	OwnerID     int64
	Title       string
	Date        time.Time
	City        string
	Private     bool
	Description string
	Items       []string
	Image       string // stored filename, empty = no image
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasImage reports whether a stored image is attached to the event.
func (e Event) HasImage() bool {
	return e.Image != ""
}
