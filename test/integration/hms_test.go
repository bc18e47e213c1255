package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/hospital"
	"github.com/hms/hms/internal/platform/storage"
)

func newSystem(t *testing.T, path string) *hospital.System {
	t.Helper()
	return hospital.New(storage.NewFileStore(path), zerolog.Nop())
}

// TestFullScenario walks the reference flow end to end against a real file
// store: two patients, one doctor, one appointment, then a reload from
// disk.
func TestFullScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital_data.json")
	sys := newSystem(t, path)

	var patientID, doctorID, apptID string

	t.Run("AddPatients", func(t *testing.T) {
		var err error
		patientID, err = sys.AddPatient(hospital.AddPatientParams{
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane@example.com",
			Phone:       "555-123-4567",
			DateOfBirth: "1990-05-01",
			Gender:      "F",
			Street:      "1 Main St",
			City:        "Springfield",
			State:       "IL",
			ZipCode:     "62701",
		})
		if err != nil {
			t.Fatalf("AddPatient: %v", err)
		}
		if patientID != "PAT0001" {
			t.Fatalf("first patient id = %q, want PAT0001", patientID)
		}

		second, err := sys.AddPatient(hospital.AddPatientParams{
			FirstName:   "John",
			LastName:    "Smith",
			Email:       "john@example.com",
			Phone:       "555-987-6543",
			DateOfBirth: "1985-11-23",
			Gender:      "M",
			Street:      "2 Oak Ave",
			City:        "Springfield",
			State:       "IL",
			ZipCode:     "62702",
		})
		if err != nil {
			t.Fatalf("AddPatient: %v", err)
		}
		if second != "PAT0002" {
			t.Fatalf("second patient id = %q, want PAT0002", second)
		}
	})

	t.Run("AddDoctor", func(t *testing.T) {
		var err error
		doctorID, err = sys.AddDoctor(hospital.AddDoctorParams{
			FirstName:      "Gregory",
			LastName:       "House",
			Specialization: "Diagnostics",
			LicenseNumber:  "LIC-42",
			Email:          "house@example.com",
			Phone:          "555-000-1111",
			Gender:         "M",
			DateOfBirth:    "1959-06-11",
			Street:         "221B Princeton",
			City:           "Princeton",
			State:          "NJ",
			ZipCode:        "08540",
		})
		if err != nil {
			t.Fatalf("AddDoctor: %v", err)
		}
		if doctorID != "DOC0001" {
			t.Fatalf("doctor id = %q, want DOC0001", doctorID)
		}
	})

	t.Run("ScheduleAppointment", func(t *testing.T) {
		var err error
		apptID, err = sys.ScheduleAppointment(patientID, doctorID, "2024-06-01", "10:30", "Checkup")
		if err != nil {
			t.Fatalf("ScheduleAppointment: %v", err)
		}
		if apptID != "APT0001" {
			t.Fatalf("appointment id = %q, want APT0001", apptID)
		}

		appts := sys.Appointments()
		if len(appts) != 1 {
			t.Fatalf("expected 1 global appointment, got %d", len(appts))
		}
		if appts[0].Status != hospital.StatusScheduled {
			t.Fatalf("status = %q, want Scheduled", appts[0].Status)
		}

		mine := sys.AppointmentsFor(patientID)
		if len(mine) != 1 {
			t.Fatalf("expected 1 appointment for %s, got %d", patientID, len(mine))
		}
		if *mine[0] != *appts[0] {
			t.Fatalf("patient view and global entry differ: %+v vs %+v", *mine[0], *appts[0])
		}
	})

	t.Run("NotFoundLeavesFileUntouched", func(t *testing.T) {
		before, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := sys.ScheduleAppointment("PAT9999", doctorID, "2024-06-02", "09:00", "x"); !hospital.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		after, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(before) != string(after) {
			t.Fatal("failed scheduling rewrote the backing file")
		}
	})

	t.Run("ReloadFromDisk", func(t *testing.T) {
		reloaded := newSystem(t, path)

		if len(reloaded.Patients()) != 2 {
			t.Fatalf("expected 2 patients after reload, got %d", len(reloaded.Patients()))
		}
		p, ok := reloaded.PatientByID(patientID)
		if !ok {
			t.Fatalf("%s missing after reload", patientID)
		}
		if p.Email != "jane@example.com" || p.Address.Country != "USA" {
			t.Fatalf("patient fields lost on reload: %+v", p)
		}

		d, ok := reloaded.DoctorByID(doctorID)
		if !ok {
			t.Fatalf("%s missing after reload", doctorID)
		}
		if len(d.Schedule["Monday"]) != 3 {
			t.Fatalf("doctor schedule lost on reload: %v", d.Schedule)
		}

		mine := reloaded.AppointmentsFor(patientID)
		if len(mine) != 1 || mine[0].AppointmentID != apptID {
			t.Fatalf("appointment index not rebuilt on reload: %+v", mine)
		}

		// Id generation continues where the file left off.
		next, err := reloaded.ScheduleAppointment(patientID, doctorID, "2024-06-02", "09:00", "Follow-up")
		if err != nil {
			t.Fatalf("ScheduleAppointment after reload: %v", err)
		}
		if next != "APT0002" {
			t.Fatalf("appointment id after reload = %q, want APT0002", next)
		}
	})
}

func TestCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital_data.json")
	if err := os.WriteFile(path, []byte("{\"patients\": oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	sys := newSystem(t, path)
	if len(sys.Patients()) != 0 || len(sys.Doctors()) != 0 || len(sys.Appointments()) != 0 {
		t.Fatal("corrupt file must yield empty collections")
	}

	// The fresh system keeps working and overwrites the bad file on the
	// next mutation.
	id, err := sys.AddPatient(hospital.AddPatientParams{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "555-123-4567",
		DateOfBirth: "1990-05-01",
		Gender:      "F",
	})
	if err != nil {
		t.Fatalf("AddPatient after corrupt load: %v", err)
	}
	if id != "PAT0001" {
		t.Fatalf("id = %q, want PAT0001", id)
	}

	reloaded := newSystem(t, path)
	if _, ok := reloaded.PatientByID("PAT0001"); !ok {
		t.Fatal("recovered state was not persisted")
	}
}
