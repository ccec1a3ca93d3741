package shopping

// Flags are the user-toggled states of a line
type Flags struct {
	Checked  bool `json:"checked"`
	Selected bool `json:"selected"`
}

// Session is the per-user shopping state that outlives a single aggregation
type Session struct {
	ManualItems []ManualItem  `json:"manual_items"`
	Flags       map[Key]Flags `json:"flags"`
}

// NewSession returns an empty session
func NewSession() *Session {
	return &Session{ManualItems: []ManualItem{}, Flags: map[Key]Flags{}}
}

// AddManual appends a manual line
func (s *Session) AddManual(item ManualItem) {
	s.ManualItems = append(s.ManualItems, item)
}

// SetFlags records the checked/selected state for a key
func (s *Session) SetFlags(key Key, f Flags) {
	if s.Flags == nil {
		s.Flags = map[Key]Flags{}
	}
	s.Flags[key] = f
}

// Apply copies the session flags onto aggregated lines
func (s *Session) Apply(items []GroupedIngredient) []GroupedIngredient {
	for i := range items {
		if f, ok := s.Flags[items[i].Key]; ok {
			items[i].Checked = f.Checked
			items[i].Selected = f.Selected
		}
	}
	return items
}
