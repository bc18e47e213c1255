package hospital

// State is a snapshot of the three collections, exchanged with a Store.
// Appointment ownership lives solely in Appointments; stores derive any
// per-patient projection they need for their on-disk format.
type State struct {
	Patients     map[string]*Patient
	Doctors      map[string]*Doctor
	Appointments map[string]*Appointment
}

// NewState returns a snapshot with empty, independent collections.
func NewState() *State {
	return &State{
		Patients:     make(map[string]*Patient),
		Doctors:      make(map[string]*Doctor),
		Appointments: make(map[string]*Appointment),
	}
}

// Store persists the whole repository state. Load returns an empty state
// (not an error) when no backing file exists yet; Save replaces whatever
// was persisted before.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
}
