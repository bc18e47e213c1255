package shell

import (
	"fmt"
	"strings"

	"github.com/hms/hms/internal/domain/hospital"
)

func (s *Shell) managePatients() error {
	return s.subMenu("PATIENT MANAGEMENT", []menuItem{
		{1, "Add Patient", s.addPatient},
		{2, "View Patients", s.viewPatients},
		{3, "Back", nil},
	})
}

func (s *Shell) manageDoctors() error {
	return s.subMenu("DOCTOR MANAGEMENT", []menuItem{
		{1, "Add Doctor", s.addDoctor},
		{2, "View Doctors", s.viewDoctors},
		{3, "Back", nil},
	})
}

func (s *Shell) manageAppointments() error {
	return s.subMenu("APPOINTMENT MANAGEMENT", []menuItem{
		{1, "Schedule Appointment", s.scheduleAppointment},
		{2, "View Appointments", s.viewAppointments},
		{3, "Back", nil},
	})
}

func (s *Shell) subMenu(title string, items []menuItem) error {
	for {
		s.banner(title, 50)
		for _, item := range items {
			fmt.Fprintf(s.out, "%d. %s\n", item.id, item.label)
		}
		fmt.Fprintln(s.out, strings.Repeat("=", 50))
		choice, err := s.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(items)))
		if err != nil {
			return err
		}
		var picked *menuItem
		for i := range items {
			if fmt.Sprint(items[i].id) == choice {
				picked = &items[i]
				break
			}
		}
		if picked == nil {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number between 1 and %d.\n", len(items))
			s.pause()
			continue
		}
		if picked.run == nil {
			return nil
		}
		if err := picked.run(); err != nil {
			return err
		}
	}
}

func (s *Shell) addPatient() error {
	s.banner("ADD NEW PATIENT", 50)

	firstName, err := s.prompt("First Name: ")
	if err != nil {
		return err
	}
	lastName, err := s.prompt("Last Name: ")
	if err != nil {
		return err
	}
	email, err := s.promptValid("Email: ", hospital.ValidateEmail,
		"Invalid email format. Please try again.")
	if err != nil {
		return err
	}
	phone, err := s.promptValid("Phone: ", hospital.ValidatePhone,
		"Invalid phone number. Please try again.")
	if err != nil {
		return err
	}
	dob, err := s.promptValid("Date of Birth (YYYY-MM-DD): ", hospital.ValidateDate,
		"Invalid date format. Please use YYYY-MM-DD.")
	if err != nil {
		return err
	}
	gender, err := s.prompt("Gender (M/F/O): ")
	if err != nil {
		return err
	}
	bloodType, err := s.prompt("Blood Type (optional): ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nAddress Information:")
	street, city, state, zip, err := s.promptAddress()
	if err != nil {
		return err
	}

	id, addErr := s.sys.AddPatient(hospital.AddPatientParams{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       phone,
		DateOfBirth: dob,
		Gender:      strings.ToUpper(gender),
		BloodType:   strings.ToUpper(bloodType),
		Street:      street,
		City:        city,
		State:       state,
		ZipCode:     zip,
	})
	if addErr != nil {
		fmt.Fprintf(s.out, "\nCould not add patient: %v\n", addErr)
		s.pause()
		return nil
	}

	fmt.Fprintf(s.out, "\nPatient added successfully! Patient ID: %s\n", id)
	s.pause()
	return nil
}

func (s *Shell) viewPatients() error {
	patients := s.sys.Patients()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	fmt.Fprintln(s.out, center("PATIENT RECORDS", 100))
	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	fmt.Fprintf(s.out, "%-8s%-25s%-8s%-12s%-15s%-30s\n", "ID", "Name", "Gender", "DOB", "Phone", "Email")
	fmt.Fprintln(s.out, strings.Repeat("-", 100))

	for _, p := range patients {
		name := p.FirstName + " " + p.LastName
		fmt.Fprintf(s.out, "%-8s%-25s%-8s%-12s%-15s%-30s\n",
			p.PatientID, name, p.Gender, p.DateOfBirth, p.Phone, p.Email)
	}

	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	s.pause()
	return nil
}

func (s *Shell) addDoctor() error {
	s.banner("ADD NEW DOCTOR", 50)

	firstName, err := s.prompt("First Name: ")
	if err != nil {
		return err
	}
	lastName, err := s.prompt("Last Name: ")
	if err != nil {
		return err
	}
	specialization, err := s.prompt("Specialization: ")
	if err != nil {
		return err
	}
	license, err := s.prompt("License Number: ")
	if err != nil {
		return err
	}
	email, err := s.promptValid("Email: ", hospital.ValidateEmail,
		"Invalid email format. Please try again.")
	if err != nil {
		return err
	}
	phone, err := s.promptValid("Phone: ", hospital.ValidatePhone,
		"Invalid phone number. Please try again.")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nAddress Information:")
	street, city, state, zip, err := s.promptAddress()
	if err != nil {
		return err
	}

	gender, err := s.prompt("Gender (M/F/O): ")
	if err != nil {
		return err
	}
	// Date of birth is stored as typed; doctor registration never
	// validated it.
	dob, err := s.prompt("Date of Birth (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	id, addErr := s.sys.AddDoctor(hospital.AddDoctorParams{
		FirstName:      firstName,
		LastName:       lastName,
		Specialization: specialization,
		LicenseNumber:  license,
		Email:          email,
		Phone:          phone,
		Gender:         strings.ToUpper(gender),
		DateOfBirth:    dob,
		Street:         street,
		City:           city,
		State:          state,
		ZipCode:        zip,
	})
	if addErr != nil {
		fmt.Fprintf(s.out, "\nCould not add doctor: %v\n", addErr)
		s.pause()
		return nil
	}

	fmt.Fprintf(s.out, "\nDoctor added successfully! Doctor ID: %s\n", id)
	s.pause()
	return nil
}

func (s *Shell) viewDoctors() error {
	doctors := s.sys.Doctors()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	fmt.Fprintln(s.out, center("DOCTOR RECORDS", 100))
	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	fmt.Fprintf(s.out, "%-8s%-25s%-20s%-15s%-30s\n", "ID", "Name", "Specialization", "License", "Email")
	fmt.Fprintln(s.out, strings.Repeat("-", 100))

	for _, d := range doctors {
		name := "Dr. " + d.FirstName + " " + d.LastName
		fmt.Fprintf(s.out, "%-8s%-25s%-20s%-15s%-30s\n",
			d.DoctorID, name, d.Specialization, d.LicenseNumber, d.Email)
	}

	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	s.pause()
	return nil
}

func (s *Shell) scheduleAppointment() error {
	s.banner("SCHEDULE APPOINTMENT", 50)

	patientID, err := s.prompt("Enter Patient ID: ")
	if err != nil {
		return err
	}
	if _, ok := s.sys.PatientByID(patientID); !ok {
		fmt.Fprintln(s.out, "Patient not found!")
		s.pause()
		return nil
	}

	fmt.Fprintln(s.out, "\nAvailable Doctors:")
	for _, d := range s.sys.Doctors() {
		fmt.Fprintf(s.out, "%s: Dr. %s (%s)\n", d.DoctorID, d.LastName, d.Specialization)
	}

	doctorID, err := s.prompt("\nEnter Doctor ID: ")
	if err != nil {
		return err
	}
	if _, ok := s.sys.DoctorByID(doctorID); !ok {
		fmt.Fprintln(s.out, "Doctor not found!")
		s.pause()
		return nil
	}

	date, err := s.promptValid("Date (YYYY-MM-DD): ", hospital.ValidateDate,
		"Invalid date format. Please use YYYY-MM-DD.")
	if err != nil {
		return err
	}
	timeStr, err := s.promptValid("Time (HH:MM): ", hospital.ValidateTime,
		"Invalid time format. Please use HH:MM.")
	if err != nil {
		return err
	}
	reason, err := s.prompt("Reason for appointment: ")
	if err != nil {
		return err
	}

	id, schedErr := s.sys.ScheduleAppointment(patientID, doctorID, date, timeStr, reason)
	if schedErr != nil {
		fmt.Fprintf(s.out, "\nCould not schedule appointment: %v\n", schedErr)
		s.pause()
		return nil
	}

	fmt.Fprintf(s.out, "\nAppointment scheduled successfully! Appointment ID: %s\n", id)
	s.pause()
	return nil
}

func (s *Shell) viewAppointments() error {
	appts := s.sys.Appointments()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	fmt.Fprintln(s.out, center("APPOINTMENTS", 100))
	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	fmt.Fprintf(s.out, "%-10s%-10s%-10s%-12s%-8s%-12s%-30s\n",
		"ID", "Patient", "Doctor", "Date", "Time", "Status", "Reason")
	fmt.Fprintln(s.out, strings.Repeat("-", 100))

	for _, a := range appts {
		fmt.Fprintf(s.out, "%-10s%-10s%-10s%-12s%-8s%-12s%-30s\n",
			a.AppointmentID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status, a.Reason)
	}

	fmt.Fprintln(s.out, strings.Repeat("=", 100))
	s.pause()
	return nil
}

func (s *Shell) promptAddress() (street, city, state, zip string, err error) {
	if street, err = s.prompt("Street: "); err != nil {
		return
	}
	if city, err = s.prompt("City: "); err != nil {
		return
	}
	if state, err = s.prompt("State: "); err != nil {
		return
	}
	zip, err = s.prompt("ZIP Code: ")
	return
}
