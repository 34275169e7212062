package form

// Page is the set of questions that share one grouping key and are shown together.
type Page struct {
	Key       string
	Questions []Question
	Index     int
	Total     int
}

// IsFirst reports whether the page is the first one.
func (p Page) IsFirst() bool {
	return p.Index == 0
}

// IsLast reports whether the page is the terminal one.
func (p Page) IsLast() bool {
	return p.Index == p.Total-1
}

// Pager partitions questions into pages by their field and tracks the active page.
// Pages are ordered by the first appearance of their field in the question list.
type Pager struct {
	groups   map[string][]Question
	keys     []string
	position int
}

// NewPager groups the questions by field, keeping first-seen order of the fields and the original order inside each group.
func NewPager(questions []Question) Pager {
	p := Pager{
		groups: make(map[string][]Question),
	}

	for _, q := range questions {
		if _, ok := p.groups[q.Field]; !ok {
			p.keys = append(p.keys, q.Field)
		}

		p.groups[q.Field] = append(p.groups[q.Field], q)
	}

	return p
}

// Total returns the number of pages.
func (p *Pager) Total() int {
	return len(p.keys)
}

// Keys returns the page keys in display order.
func (p *Pager) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Current returns the active page.
func (p *Pager) Current() Page {
	return p.page(p.position)
}

// Pages returns every page in display order.
func (p *Pager) Pages() []Page {
	pages := make([]Page, len(p.keys))
	for i := range p.keys {
		pages[i] = p.page(i)
	}

	return pages
}

func (p *Pager) page(i int) Page {
	if i < 0 || i >= len(p.keys) {
		return Page{Index: i, Total: len(p.keys)}
	}

	key := p.keys[i]

	return Page{
		Key:       key,
		Questions: p.groups[key],
		Index:     i,
		Total:     len(p.keys),
	}
}

func (p *Pager) forward() bool {
	if p.position >= len(p.keys)-1 {
		return false
	}

	p.position++

	return true
}

func (p *Pager) back() bool {
	if p.position == 0 {
		return false
	}

	p.position--

	return true
}
