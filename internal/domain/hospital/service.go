package hospital

import (
	"sort"

	"github.com/rs/zerolog"
)

// System holds the in-memory collections and persists them through its
// Store after every mutation. It is an explicit instance, not a process
// singleton; tests and callers create as many as they need.
type System struct {
	patients     map[string]*Patient
	doctors      map[string]*Doctor
	appointments map[string]*Appointment

	// apptsByPatient indexes appointment ids per patient in scheduling
	// order. The global map is the only place appointment values live.
	apptsByPatient map[string][]string

	store Store
	log   zerolog.Logger
}

// New loads existing state from store. A missing backing file yields an
// empty system; an unreadable or corrupt one is reported and the system
// starts fresh rather than partially populated.
func New(store Store, logger zerolog.Logger) *System {
	s := &System{
		patients:       make(map[string]*Patient),
		doctors:        make(map[string]*Doctor),
		appointments:   make(map[string]*Appointment),
		apptsByPatient: make(map[string][]string),
		store:          store,
		log:            logger,
	}

	state, err := store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("error loading data, starting with empty database")
		return s
	}
	s.patients = state.Patients
	s.doctors = state.Doctors
	s.appointments = state.Appointments
	s.reindex()
	return s
}

// reindex rebuilds the patient→appointment index from the global map.
// Ids are zero-padded, so sorting by id reproduces scheduling order.
func (s *System) reindex() {
	s.apptsByPatient = make(map[string][]string)
	for id, appt := range s.appointments {
		s.apptsByPatient[appt.PatientID] = append(s.apptsByPatient[appt.PatientID], id)
	}
	for _, ids := range s.apptsByPatient {
		sort.Strings(ids)
	}
}

// AddPatientParams carries the already-collected field values for a new
// patient. Prompting and re-prompting belong to the caller.
type AddPatientParams struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth string
	Gender      string
	BloodType   string
	Street      string
	City        string
	State       string
	ZipCode     string
	Country     string
}

// AddPatient validates, assigns a fresh PAT id, stores the patient, and
// persists. Returns the new id.
func (s *System) AddPatient(p AddPatientParams) (string, error) {
	if !ValidateEmail(p.Email) {
		return "", &ValidationError{Field: "email", Value: p.Email}
	}
	if !ValidatePhone(p.Phone) {
		return "", &ValidationError{Field: "phone", Value: p.Phone}
	}
	if !ValidateDate(p.DateOfBirth) {
		return "", &ValidationError{Field: "date of birth", Value: p.DateOfBirth}
	}

	id := GenerateID(PrefixPatient, mapKeys(s.patients))
	var bloodType *string
	if p.BloodType != "" {
		bt := p.BloodType
		bloodType = &bt
	}
	patient := NewPatient(id, Person{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Address:     NewAddress(p.Street, p.City, p.State, p.ZipCode, p.Country),
		Phone:       p.Phone,
		Email:       p.Email,
	}, bloodType)

	s.patients[id] = patient
	if err := s.Save(); err != nil {
		return "", err
	}
	s.log.Info().Str("patient_id", id).Msg("patient added")
	return id, nil
}

// AddDoctorParams carries the already-collected field values for a new
// doctor. Date of birth is stored as given, without validation.
type AddDoctorParams struct {
	FirstName      string
	LastName       string
	Specialization string
	LicenseNumber  string
	Email          string
	Phone          string
	Gender         string
	DateOfBirth    string
	Street         string
	City           string
	State          string
	ZipCode        string
	Country        string
}

// AddDoctor validates email and phone, assigns a fresh DOC id, stores the
// doctor with the default sample schedule, and persists.
func (s *System) AddDoctor(p AddDoctorParams) (string, error) {
	if !ValidateEmail(p.Email) {
		return "", &ValidationError{Field: "email", Value: p.Email}
	}
	if !ValidatePhone(p.Phone) {
		return "", &ValidationError{Field: "phone", Value: p.Phone}
	}

	id := GenerateID(PrefixDoctor, mapKeys(s.doctors))
	doctor := NewDoctor(id, Person{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Address:     NewAddress(p.Street, p.City, p.State, p.ZipCode, p.Country),
		Phone:       p.Phone,
		Email:       p.Email,
	}, p.Specialization, p.LicenseNumber, nil)

	s.doctors[id] = doctor
	if err := s.Save(); err != nil {
		return "", err
	}
	s.log.Info().Str("doctor_id", id).Msg("doctor added")
	return id, nil
}

// ScheduleAppointment checks both referenced ids before touching any
// state, validates date and time, and records the appointment with status
// Scheduled. Nothing prevents double-booking a doctor; callers get no
// such guarantee.
func (s *System) ScheduleAppointment(patientID, doctorID, date, timeStr, reason string) (string, error) {
	if _, ok := s.patients[patientID]; !ok {
		return "", &NotFoundError{Kind: "patient", ID: patientID}
	}
	if _, ok := s.doctors[doctorID]; !ok {
		return "", &NotFoundError{Kind: "doctor", ID: doctorID}
	}
	if !ValidateDate(date) {
		return "", &ValidationError{Field: "date", Value: date}
	}
	if !ValidateTime(timeStr) {
		return "", &ValidationError{Field: "time", Value: timeStr}
	}

	id := GenerateID(PrefixAppointment, mapKeys(s.appointments))
	appt := &Appointment{
		AppointmentID: id,
		PatientID:     patientID,
		DoctorID:      doctorID,
		Date:          date,
		Time:          timeStr,
		Reason:        reason,
		Status:        StatusScheduled,
	}

	s.appointments[id] = appt
	s.apptsByPatient[patientID] = append(s.apptsByPatient[patientID], id)
	if err := s.Save(); err != nil {
		return "", err
	}
	s.log.Info().
		Str("appointment_id", id).
		Str("patient_id", patientID).
		Str("doctor_id", doctorID).
		Msg("appointment scheduled")
	return id, nil
}

// Patients returns all patients ordered by id. Pure read, no save.
func (s *System) Patients() []*Patient {
	out := make([]*Patient, 0, len(s.patients))
	for _, id := range sortedKeys(mapKeys(s.patients)) {
		out = append(out, s.patients[id])
	}
	return out
}

// Doctors returns all doctors ordered by id.
func (s *System) Doctors() []*Doctor {
	out := make([]*Doctor, 0, len(s.doctors))
	for _, id := range sortedKeys(mapKeys(s.doctors)) {
		out = append(out, s.doctors[id])
	}
	return out
}

// Appointments returns all appointments ordered by id.
func (s *System) Appointments() []*Appointment {
	out := make([]*Appointment, 0, len(s.appointments))
	for _, id := range sortedKeys(mapKeys(s.appointments)) {
		out = append(out, s.appointments[id])
	}
	return out
}

// AppointmentsFor returns a patient's appointments in scheduling order,
// derived from the index. The returned slice is freshly built; mutating it
// does not touch system state.
func (s *System) AppointmentsFor(patientID string) []*Appointment {
	ids := s.apptsByPatient[patientID]
	out := make([]*Appointment, 0, len(ids))
	for _, id := range ids {
		if appt, ok := s.appointments[id]; ok {
			out = append(out, appt)
		}
	}
	return out
}

// PatientByID looks up a patient.
func (s *System) PatientByID(id string) (*Patient, bool) {
	p, ok := s.patients[id]
	return p, ok
}

// DoctorByID looks up a doctor.
func (s *System) DoctorByID(id string) (*Doctor, bool) {
	d, ok := s.doctors[id]
	return d, ok
}

// Save writes the whole state through the store. Mutating operations call
// it before returning; shutdown paths call it directly.
func (s *System) Save() error {
	state := &State{
		Patients:     s.patients,
		Doctors:      s.doctors,
		Appointments: s.appointments,
	}
	if err := s.store.Save(state); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func sortedKeys(keys []string) []string {
	sort.Strings(keys)
	return keys
}
