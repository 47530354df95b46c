package view

// Controller owns one screen's filter selections, sort spec, page index,
// and detail-pane selection. Every call to Visible recomputes the full
// pipeline (filter, then sort, then page) from a fresh snapshot of the
// source collection. Recomputation is synchronous and total; collections
// are small enough that incremental diffing would be complexity without
// payoff.
type Controller[E any] struct {
	cfg    Config[E]
	source func() []E

	query      string
	selections map[string]string
	sortKey    string
	desc       bool
	page       int

	selectedID string

	// lastSize tracks the filtered result size so the page index resets
	// only when the result set actually changes size, not on every
	// keystroke.
	lastSize int
}

// NewController wires a screen config to a snapshot source.
func NewController[E any](cfg Config[E], source func() []E) *Controller[E] {
	return &Controller[E]{
		cfg:        cfg,
		source:     source,
		selections: map[string]string{},
		sortKey:    cfg.DefaultSort,
		page:       1,
		lastSize:   -1,
	}
}

// SetQuery replaces the free-text query.
func (c *Controller[E]) SetQuery(q string) {
	c.query = q
}

// Query returns the current free-text query.
func (c *Controller[E]) Query() string {
	return c.query
}

// SetFilter selects a value for a named dimension. "" and the All
// sentinel both mean unconstrained. Unknown dimensions are ignored.
func (c *Controller[E]) SetFilter(name, value string) {
	if _, ok := c.cfg.dimension(name); !ok {
		return
	}
	c.selections[name] = value
}

// Filter returns the active selection for a dimension (All when unset).
func (c *Controller[E]) Filter(name string) string {
	if v, ok := c.selections[name]; ok && v != "" {
		return v
	}
	return All
}

// ClearFilters resets every selection and the query, and returns to page
// 1. The sort spec is deliberately left alone.
func (c *Controller[E]) ClearFilters() {
	c.query = ""
	c.selections = map[string]string{}
	c.page = 1
	c.lastSize = -1
}

// SortBy applies toggle semantics: re-selecting the current key flips
// direction; selecting a new key resets to ascending. Keys without a
// configured comparator are ignored.
func (c *Controller[E]) SortBy(key string) {
	if _, ok := c.cfg.Sorts[key]; !ok {
		return
	}
	if key == c.sortKey {
		c.desc = !c.desc
		return
	}
	c.sortKey = key
	c.desc = false
}

// SetSort sets the key and direction explicitly (flag-driven callers).
func (c *Controller[E]) SetSort(key string, desc bool) {
	if _, ok := c.cfg.Sorts[key]; !ok {
		return
	}
	c.sortKey = key
	c.desc = desc
}

// Sort returns the current sort key and direction.
func (c *Controller[E]) Sort() (string, bool) {
	return c.sortKey, c.desc
}

// SetPage requests a 1-based page index; it is clamped on recompute.
func (c *Controller[E]) SetPage(i int) {
	c.page = i
}

// NextPage advances one page; a no-op on the last page.
func (c *Controller[E]) NextPage() {
	c.page++
}

// PrevPage goes back one page; a no-op on the first page.
func (c *Controller[E]) PrevPage() {
	c.page--
}

// Select binds the detail pane to a record identifier.
func (c *Controller[E]) Select(id string) {
	c.selectedID = id
}

// Selected resolves the detail-pane record against the current snapshot.
// If the record was deleted the selection falls back to none rather than
// dangling.
func (c *Controller[E]) Selected() (E, bool) {
	var zero E
	if c.selectedID == "" || c.cfg.ID == nil {
		return zero, false
	}
	for _, e := range c.source() {
		if c.cfg.ID(e) == c.selectedID {
			return e, true
		}
	}
	c.selectedID = ""
	return zero, false
}

// Visible recomputes the visible page from the full source collection:
// filter, then sort, then window. Filtering first keeps the sort cheap
// and is required for correct page counts.
func (c *Controller[E]) Visible() Page[E] {
	filtered := Filter(c.source(), Predicate(c.cfg, c.query, c.selections))

	if c.lastSize >= 0 && len(filtered) != c.lastSize {
		c.page = 1
	}
	c.lastSize = len(filtered)

	SortStable(filtered, c.cfg.Sorts[c.sortKey], c.desc)

	page := Window(filtered, c.cfg.PageSize, c.page)
	c.page = page.Index
	return page
}
