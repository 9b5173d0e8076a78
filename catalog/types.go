package catalog

import "time"

// Agent is a single directory listing: identity, searchable metadata and
// the aggregate of its reviews. The Rating field is derived; it always
// equals the arithmetic mean of the review ratings (0 when there are no
// reviews) and is recomputed whenever a review is appended.
type Agent struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Capabilities    []string `json:"capabilities"`
	Instructions    string   `json:"instructions,omitempty"`
	Examples        []string `json:"examples,omitempty"`
	Pricing         string   `json:"pricing,omitempty"` // empty means free
	ImageURL        string   `json:"imageUrl,omitempty"`
	Rating          float64  `json:"rating"`
	Reviews         []Review `json:"reviews"`
	Categories      []string `json:"categories"`
}

// Review is a single user review. Reviews are append-only for the
// lifetime of the process and are never edited or deleted.
type Review struct {
	ID      string    `json:"id"`
	Author  string    `json:"author,omitempty"`
	Rating  int       `json:"rating"` // 1..5
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// Clone returns a deep copy so callers can never mutate store internals
// through a returned value.
func (a Agent) Clone() Agent {
	c := a
	c.Capabilities = append([]string(nil), a.Capabilities...)
	c.Examples = append([]string(nil), a.Examples...)
	c.Categories = append([]string(nil), a.Categories...)
	c.Reviews = append([]Review(nil), a.Reviews...)
	return c
}

// meanRating computes the derived rating for a review list.
func meanRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
