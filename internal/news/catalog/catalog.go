package catalog

import "github.com/AlibekovAA/feedboard/backend/internal/news/domain"

// Catalog is a read-only list of news items fixed at construction time.
// There are no mutation operations; the catalog lives as long as the process.
type Catalog struct {
	items []domain.NewsItem
}

func New(items []domain.NewsItem) *Catalog {
	return &Catalog{items: append([]domain.NewsItem(nil), items...)}
}

// NewDefault returns the catalog the service ships with.
func NewDefault() *Catalog {
	return New([]domain.NewsItem{
		{
			ID:      "1",
			Title:   "Adventure",
			Image:   "https://i.pravatar.cc/300?img=1",
			Content: "Join us for an exciting adventure through the Green Mountains!",
		},
		{
			ID:      "2",
			Title:   "River rafting experience",
			Image:   "https://i.pravatar.cc/300?img=2",
			Content: "Get ready for a thrilling ride down the wild river rapids.",
		},
		{
			ID:      "3",
			Title:   "Summit climb",
			Image:   "https://i.pravatar.cc/300?img=3",
			Content: "Become part of the team conquering the highest mountain peaks.",
		},
		{
			ID:      "4",
			Title:   "A night in the desert",
			Image:   "https://i.pravatar.cc/300?img=4",
			Content: "Explore the mysteries of the desert and enjoy the starry sky far from the city bustle.",
		},
	})
}

func (c *Catalog) List() []domain.NewsItem {
	out := make([]domain.NewsItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) FindByID(id string) (domain.NewsItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.NewsItem{}, false
}
