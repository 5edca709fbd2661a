package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCard is returned when a token does not name any card in the catalog.
var ErrUnknownCard = errors.New("unknown card")

// Category defines the group a card belongs to using a typed enum.
type Category int

const (
	CategorySuspect Category = iota
	CategoryWeapon
	CategoryRoom
)

// Categories lists every category in display order.
var Categories = []Category{CategorySuspect, CategoryWeapon, CategoryRoom}

func (c Category) String() string {
	return []string{"suspects", "weapons", "rooms"}[c]
}

// Singular returns the lower-case singular label ("suspect", "weapon", "room").
func (c Category) Singular() string {
	return []string{"suspect", "weapon", "room"}[c]
}

// Card is a single catalog entry. Key is the short token ("lead_pipe"),
// Name the display label ("Lead Pipe").
type Card struct {
	Category Category
	Key      string
	Name     string
}

func (c Card) String() string { return c.Name }

// IsZero reports whether c is the zero Card.
func (c Card) IsZero() bool { return c.Key == "" && c.Name == "" }

// Definition describes a card before it is placed in a catalog.
type Definition struct {
	Key  string
	Name string
}

// Catalog is the immutable universe of cards, partitioned by category.
type Catalog struct {
	all        []Card
	byCategory map[Category][]Card
	lookup     map[string]Card
}

// NewCatalog builds a catalog from the three card groups. Keys are derived from
// names when empty. Every key and name must be unique (case-insensitively).
func NewCatalog(suspects, weapons, rooms []Definition) (*Catalog, error) {
	cat := &Catalog{
		byCategory: make(map[Category][]Card),
		lookup:     make(map[string]Card),
	}
	groups := map[Category][]Definition{
		CategorySuspect: suspects,
		CategoryWeapon:  weapons,
		CategoryRoom:    rooms,
	}
	for _, category := range Categories {
		specs := groups[category]
		if len(specs) == 0 {
			return nil, fmt.Errorf("catalog has no %s", category)
		}
		for _, s := range specs {
			if strings.TrimSpace(s.Name) == "" {
				return nil, fmt.Errorf("%s entry with empty name", category.Singular())
			}
			key := s.Key
			if key == "" {
				key = KeyFor(s.Name)
			}
			card := Card{Category: category, Key: strings.ToLower(key), Name: s.Name}
			for _, alias := range []string{card.Key, strings.ToLower(card.Name)} {
				if prev, dup := cat.lookup[alias]; dup && prev != card {
					return nil, fmt.Errorf("duplicate card alias %q (%s, %s)", alias, prev.Name, card.Name)
				}
				cat.lookup[alias] = card
			}
			cat.all = append(cat.all, card)
			cat.byCategory[category] = append(cat.byCategory[category], card)
		}
	}
	return cat, nil
}

// KeyFor derives a short token from a display name: "Mrs. White" -> "mrs_white".
func KeyFor(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, ".", "")
	return strings.Join(strings.Fields(name), "_")
}

// All returns every card in catalog order.
func (c *Catalog) All() []Card {
	out := make([]Card, len(c.all))
	copy(out, c.all)
	return out
}

// InCategory returns the cards of one category in catalog order.
func (c *Catalog) InCategory(cat Category) []Card {
	cards := c.byCategory[cat]
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// Len is the total number of cards.
func (c *Catalog) Len() int { return len(c.all) }

// InPlay is the number of cards dealt to players: everything but the case file.
func (c *Catalog) InPlay() int { return len(c.all) - len(Categories) }

// Lookup resolves a token, case-insensitively, against card keys and display names.
func (c *Catalog) Lookup(token string) (Card, error) {
	card, ok := c.lookup[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return Card{}, fmt.Errorf("%w: %s", ErrUnknownCard, token)
	}
	return card, nil
}
