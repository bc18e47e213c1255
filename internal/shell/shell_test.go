package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/hospital"
)

type memStore struct {
	state *hospital.State
	saves int
}

func (m *memStore) Load() (*hospital.State, error) {
	if m.state == nil {
		return hospital.NewState(), nil
	}
	return m.state, nil
}

func (m *memStore) Save(state *hospital.State) error {
	m.saves++
	m.state = state
	return nil
}

// runScript feeds each line to the shell as if typed and returns the
// rendered output.
func runScript(t *testing.T, sys *hospital.System, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	if err := New(sys, in, &out, zerolog.Nop()).Run(); err != nil {
		t.Fatalf("shell run: %v", err)
	}
	return out.String()
}

func TestAddPatientThroughMenu(t *testing.T) {
	store := &memStore{}
	sys := hospital.New(store, zerolog.Nop())

	out := runScript(t, sys,
		"1",                // Patient Management
		"1",                // Add Patient
		"Jane",             // first name
		"Doe",              // last name
		"not-an-email",     // rejected, re-prompted
		"jane@example.com", // accepted
		"555-123-4567",     // phone
		"1990-05-01",       // dob
		"F",                // gender
		"",                 // blood type (optional)
		"1 Main St",        // street
		"Springfield",      // city
		"IL",               // state
		"62701",            // zip
		"",                 // press enter
		"3",                // back
		"7",                // exit
	)

	if !strings.Contains(out, "Invalid email format. Please try again.") {
		t.Error("invalid email was not re-prompted")
	}
	if !strings.Contains(out, "Patient added successfully! Patient ID: PAT0001") {
		t.Errorf("missing success message in output:\n%s", out)
	}
	if !strings.Contains(out, "Exiting Hospital Management System. Goodbye!") {
		t.Error("missing goodbye message")
	}

	if _, ok := sys.PatientByID("PAT0001"); !ok {
		t.Fatal("patient was not stored")
	}
	// One save for the mutation, one on exit.
	if store.saves != 2 {
		t.Fatalf("expected 2 saves, got %d", store.saves)
	}
}

func TestScheduleAppointmentUnknownPatient(t *testing.T) {
	store := &memStore{}
	sys := hospital.New(store, zerolog.Nop())

	out := runScript(t, sys,
		"3",       // Appointment Management
		"1",       // Schedule Appointment
		"PAT9999", // unknown patient
		"",        // press enter
		"3",       // back
		"7",       // exit
	)

	if !strings.Contains(out, "Patient not found!") {
		t.Errorf("missing not-found message in output:\n%s", out)
	}
	if len(sys.Appointments()) != 0 {
		t.Fatal("appointment map mutated by failed scheduling")
	}
	// Only the final save on exit.
	if store.saves != 1 {
		t.Fatalf("expected 1 save, got %d", store.saves)
	}
}

func TestInvalidMenuChoice(t *testing.T) {
	sys := hospital.New(&memStore{}, zerolog.Nop())

	out := runScript(t, sys,
		"banana", // not a number
		"",       // press enter
		"9",      // out of range
		"",       // press enter
		"7",      // exit
	)

	if strings.Count(out, "Invalid input. Please enter a number between 1 and 7.") != 2 {
		t.Errorf("expected two invalid-input messages:\n%s", out)
	}
}

func TestComingSoonStubs(t *testing.T) {
	sys := hospital.New(&memStore{}, zerolog.Nop())

	out := runScript(t, sys,
		"4", "", // inpatient stub
		"5", "", // billing stub
		"6", "", // reports stub
		"7", // exit
	)

	for _, want := range []string{
		"Inpatient management module coming soon!",
		"Billing module coming soon!",
		"Reports module coming soon!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing stub message %q", want)
		}
	}
}

func TestEOFSavesAndExits(t *testing.T) {
	store := &memStore{}
	sys := hospital.New(store, zerolog.Nop())

	in := strings.NewReader("") // input closes immediately
	var out bytes.Buffer
	if err := New(sys, in, &out, zerolog.Nop()).Run(); err != nil {
		t.Fatalf("shell run: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("EOF must trigger a final save, got %d saves", store.saves)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("missing goodbye on EOF exit")
	}
}
