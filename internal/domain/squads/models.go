package squads

// Squad names one of the fixed sub-groups of the band program.
type Squad string

// WinRecord pairs a squad with the number of weeks it was squad of the week.
type WinRecord struct {
	Squad Squad `json:"squad"`
	Wins  int   `json:"wins"`
}

// Roster is the canonical, ordered list of squads.
type Roster struct {
	squads []Squad
}

// defaultRoster lists the eight squads of the marching band.
var defaultRoster = []Squad{
	"Tubas",
	"Trumpets",
	"KAOS",
	"Percussion",
	"Guard",
	"Piccs",
	"Clarinets",
	"Saxes",
}

// NewRoster copies the given squads into an immutable roster.
func NewRoster(names ...Squad) Roster {
	cp := make([]Squad, len(names))
	copy(cp, names)
	return Roster{squads: cp}
}

// DefaultRoster returns the program's standard eight squads.
func DefaultRoster() Roster {
	return NewRoster(defaultRoster...)
}

// Squads returns a copy of the roster in canonical order.
func (r Roster) Squads() []Squad {
	cp := make([]Squad, len(r.squads))
	copy(cp, r.squads)
	return cp
}

// Len reports the number of squads on the roster.
func (r Roster) Len() int {
	return len(r.squads)
}

// Contains reports whether the squad is on the roster.
func (r Roster) Contains(s Squad) bool {
	for _, sq := range r.squads {
		if sq == s {
			return true
		}
	}
	return false
}
