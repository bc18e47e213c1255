// Package storage persists the whole hospital state as a single
// pretty-printed JSON document, fully rewritten on every save. There is no
// locking; concurrent processes sharing one file will race. Single-process
// use is assumed.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/hms/hms/internal/domain/hospital"
)

// document is the on-disk shape: three top-level mappings keyed by entity
// id, snake_case field names throughout.
type document struct {
	Patients     map[string]*patientDoc           `json:"patients"`
	Doctors      map[string]*hospital.Doctor      `json:"doctors"`
	Appointments map[string]*hospital.Appointment `json:"appointments"`
}

// patientDoc adds the embedded appointments list to the patient object.
// In memory appointments live only in the global map; the embedded list is
// a projection derived at save time and kept for file compatibility.
type patientDoc struct {
	hospital.Patient
	Appointments []hospital.Appointment `json:"appointments"`
}

// FileStore implements hospital.Store over a single JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (f *FileStore) Path() string { return f.path }

// Load reads the backing file into a state snapshot. A missing file is not
// an error: the collections simply start empty. A file that cannot be
// parsed, or whose entries are missing their required ids, is reported as
// an error so the caller can start fresh instead of running on a partial
// load.
func (f *FileStore) Load() (*hospital.State, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return hospital.NewState(), nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}

	state := hospital.NewState()
	for id, pd := range doc.Patients {
		if pd == nil || pd.PatientID == "" {
			return nil, fmt.Errorf("parse %s: patient %q missing patient_id", f.path, id)
		}
		patient := pd.Patient
		normalizePatient(&patient)
		state.Patients[id] = &patient
	}
	for id, d := range doc.Doctors {
		if d == nil || d.DoctorID == "" {
			return nil, fmt.Errorf("parse %s: doctor %q missing doctor_id", f.path, id)
		}
		if d.Schedule == nil {
			d.Schedule = hospital.DefaultSchedule()
		}
		state.Doctors[id] = d
	}
	for id, a := range doc.Appointments {
		if a == nil || a.AppointmentID == "" {
			return nil, fmt.Errorf("parse %s: appointment %q missing appointment_id", f.path, id)
		}
		state.Appointments[id] = a
	}
	return state, nil
}

// Save serializes the three collections and replaces the backing file.
// Each patient object is written with its appointment list re-derived from
// the global map, so both views in the file always agree.
func (f *FileStore) Save(state *hospital.State) error {
	byPatient := make(map[string][]hospital.Appointment)
	for _, id := range sortedAppointmentIDs(state.Appointments) {
		appt := state.Appointments[id]
		byPatient[appt.PatientID] = append(byPatient[appt.PatientID], *appt)
	}

	doc := document{
		Patients:     make(map[string]*patientDoc, len(state.Patients)),
		Doctors:      state.Doctors,
		Appointments: state.Appointments,
	}
	for id, p := range state.Patients {
		appts := byPatient[id]
		if appts == nil {
			appts = []hospital.Appointment{}
		}
		doc.Patients[id] = &patientDoc{Patient: *p, Appointments: appts}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode hospital data: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// normalizePatient replaces absent list fields with fresh empty slices so
// every loaded patient upholds the per-instance empty-list invariant.
func normalizePatient(p *hospital.Patient) {
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.MedicalRecords == nil {
		p.MedicalRecords = []hospital.MedicalRecord{}
	}
	if p.Bills == nil {
		p.Bills = []hospital.BillingRecord{}
	}
	for i := range p.Bills {
		if p.Bills[i].Services == nil {
			p.Bills[i].Services = []string{}
		}
	}
}

func sortedAppointmentIDs(m map[string]*hospital.Appointment) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
