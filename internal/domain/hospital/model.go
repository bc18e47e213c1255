package hospital

// Entity id prefixes. An id is its prefix followed by a zero-padded
// decimal counter, e.g. PAT0001.
const (
	PrefixPatient     = "PAT"
	PrefixDoctor      = "DOC"
	PrefixAppointment = "APT"
	PrefixRecord      = "REC"
	PrefixBill        = "BIL"
)

// AppointmentStatus is the lifecycle state of an appointment. New
// appointments start Scheduled; Completed and Cancelled are reserved for
// the follow-up modules and never assigned by the core operations.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// DefaultCountry is applied when an address is built without a country.
const DefaultCountry = "USA"

// Address is a value type embedded by value in Patient and Doctor; it has
// no identity of its own.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// MedicalRecord is owned by a patient. Records are only created through
// treatment workflows, but any present in the data file are preserved.
type MedicalRecord struct {
	RecordID  string `json:"record_id"`
	PatientID string `json:"patient_id"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	DoctorID  string `json:"doctor_id"`
	Notes     string `json:"notes"`
}

// Appointment links a patient and a doctor at a date/time. Appointments
// live in the system's global map, keyed by id; a patient's appointment
// list is derived through an index, never stored twice.
type Appointment struct {
	AppointmentID string            `json:"appointment_id"`
	PatientID     string            `json:"patient_id"`
	DoctorID      string            `json:"doctor_id"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Reason        string            `json:"reason"`
	Status        AppointmentStatus `json:"status"`
}

// BillingRecord is owned by a patient. DatePaid stays nil until the bill
// is settled.
type BillingRecord struct {
	BillID     string   `json:"bill_id"`
	PatientID  string   `json:"patient_id"`
	Amount     float64  `json:"amount"`
	DateIssued string   `json:"date_issued"`
	DatePaid   *string  `json:"date_paid"`
	Services   []string `json:"services"`
}

// Person holds the fields shared by patients and doctors. It is never
// instantiated on its own.
type Person struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	Address     Address `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
}

// Patient identity is its PatientID. The appointment list is not part of
// the in-memory patient; see System.AppointmentsFor.
type Patient struct {
	Person
	PatientID      string          `json:"patient_id"`
	BloodType      *string         `json:"blood_type"`
	Allergies      []string        `json:"allergies"`
	MedicalRecords []MedicalRecord `json:"medical_records"`
	Bills          []BillingRecord `json:"bills"`
}

// Doctor identity is its DoctorID. Schedule maps a day name to the time
// slots the doctor is available that day.
type Doctor struct {
	Person
	DoctorID       string              `json:"doctor_id"`
	Specialization string              `json:"specialization"`
	LicenseNumber  string              `json:"license_number"`
	Schedule       map[string][]string `json:"schedule"`
}

// NewPatient builds a patient with every list field initialized to its own
// empty slice. Shared slice defaults between instances are a corruption
// hazard, so construction always goes through here.
func NewPatient(id string, p Person, bloodType *string) *Patient {
	return &Patient{
		Person:         p,
		PatientID:      id,
		BloodType:      bloodType,
		Allergies:      []string{},
		MedicalRecords: []MedicalRecord{},
		Bills:          []BillingRecord{},
	}
}

// NewDoctor builds a doctor, filling in the sample weekly schedule when
// none is given.
func NewDoctor(id string, p Person, specialization, licenseNumber string, schedule map[string][]string) *Doctor {
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return &Doctor{
		Person:         p,
		DoctorID:       id,
		Specialization: specialization,
		LicenseNumber:  licenseNumber,
		Schedule:       schedule,
	}
}

// DefaultSchedule returns the built-in two-day sample schedule assigned to
// doctors registered without one. Each call returns a fresh map.
func DefaultSchedule() map[string][]string {
	return map[string][]string{
		"Monday":  {"09:00", "11:00", "14:00"},
		"Tuesday": {"10:00", "13:00", "15:00"},
	}
}

// NewAddress fills in the default country when none is given.
func NewAddress(street, city, state, zip, country string) Address {
	if country == "" {
		country = DefaultCountry
	}
	return Address{Street: street, City: city, State: state, ZipCode: zip, Country: country}
}
