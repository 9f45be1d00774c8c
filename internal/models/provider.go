package models

// Provider is a walker or pet-sitter. Reference data, never mutated by the
// booking flows.
type Provider struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Experience string   `json:"experience"`
	Price      float64  `json:"price"`
	Location   string   `json:"location"`
	Services   []string `json:"services"`
	Avatar     string   `json:"avatar"`
	Reviews    int      `json:"reviews"`
	Verified   bool     `json:"verified"`
}

func (p Provider) Offers(service string) bool {
	for _, s := range p.Services {
		if s == service {
			return true
		}
	}
	return false
}
