package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/hospital"
	"github.com/hms/hms/internal/platform/storage"
	"github.com/hms/hms/internal/shell"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms",
		Short: "Terminal-driven hospital record keeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}

	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(patientCmd())
	rootCmd.AddCommand(doctorCmd())
	rootCmd.AddCommand(appointmentCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config, builds the session-tagged logger, and brings the
// system up from the backing file.
func setup() (*hospital.System, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := zerolog.New(os.Stderr).Level(cfg.Level()).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(cfg.Level()).With().Timestamp().Logger()
	}
	logger = logger.With().Str("session_id", uuid.NewString()).Logger()

	store := storage.NewFileStore(cfg.DataFile)
	sys := hospital.New(store, logger)
	logger.Info().Str("data_file", cfg.DataFile).Msg("hospital data loaded")
	return sys, logger, nil
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}
}

func runShell() error {
	sys, logger, err := setup()
	if err != nil {
		return err
	}

	// An interrupt saves before terminating, same as a normal exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nProgram interrupted by user. Saving data...")
		if err := sys.Save(); err != nil {
			logger.Error().Err(err).Msg("final save failed")
		}
		os.Exit(0)
	}()

	return shell.New(sys, os.Stdin, os.Stdout, logger).Run()
}

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Manage patients",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := setup()
			if err != nil {
				return err
			}
			params := hospital.AddPatientParams{}
			params.FirstName, _ = cmd.Flags().GetString("first-name")
			params.LastName, _ = cmd.Flags().GetString("last-name")
			params.Email, _ = cmd.Flags().GetString("email")
			params.Phone, _ = cmd.Flags().GetString("phone")
			params.DateOfBirth, _ = cmd.Flags().GetString("dob")
			params.Gender, _ = cmd.Flags().GetString("gender")
			params.BloodType, _ = cmd.Flags().GetString("blood-type")
			params.Street, _ = cmd.Flags().GetString("street")
			params.City, _ = cmd.Flags().GetString("city")
			params.State, _ = cmd.Flags().GetString("state")
			params.ZipCode, _ = cmd.Flags().GetString("zip")
			params.Country, _ = cmd.Flags().GetString("country")

			id, err := sys.AddPatient(params)
			if err != nil {
				return err
			}
			fmt.Printf("Patient added successfully! Patient ID: %s\n", id)
			return nil
		},
	}
	addCmd.Flags().String("first-name", "", "Patient first name")
	addCmd.Flags().String("last-name", "", "Patient last name")
	addCmd.Flags().String("email", "", "Contact email")
	addCmd.Flags().String("phone", "", "Contact phone")
	addCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	addCmd.Flags().String("gender", "", "Gender (M/F/O)")
	addCmd.Flags().String("blood-type", "", "Blood type (optional)")
	addCmd.Flags().String("street", "", "Street address")
	addCmd.Flags().String("city", "", "City")
	addCmd.Flags().String("state", "", "State")
	addCmd.Flags().String("zip", "", "ZIP code")
	addCmd.Flags().String("country", "", "Country (default USA)")
	cmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := setup()
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %-25s %-8s %-12s %-15s %s\n", "ID", "NAME", "GENDER", "DOB", "PHONE", "EMAIL")
			for _, p := range sys.Patients() {
				fmt.Printf("%-8s %-25s %-8s %-12s %-15s %s\n",
					p.PatientID, p.FirstName+" "+p.LastName, p.Gender, p.DateOfBirth, p.Phone, p.Email)
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)

	return cmd
}

func doctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Manage doctors",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := setup()
			if err != nil {
				return err
			}
			params := hospital.AddDoctorParams{}
			params.FirstName, _ = cmd.Flags().GetString("first-name")
			params.LastName, _ = cmd.Flags().GetString("last-name")
			params.Specialization, _ = cmd.Flags().GetString("specialization")
			params.LicenseNumber, _ = cmd.Flags().GetString("license")
			params.Email, _ = cmd.Flags().GetString("email")
			params.Phone, _ = cmd.Flags().GetString("phone")
			params.Gender, _ = cmd.Flags().GetString("gender")
			params.DateOfBirth, _ = cmd.Flags().GetString("dob")
			params.Street, _ = cmd.Flags().GetString("street")
			params.City, _ = cmd.Flags().GetString("city")
			params.State, _ = cmd.Flags().GetString("state")
			params.ZipCode, _ = cmd.Flags().GetString("zip")
			params.Country, _ = cmd.Flags().GetString("country")

			id, err := sys.AddDoctor(params)
			if err != nil {
				return err
			}
			fmt.Printf("Doctor added successfully! Doctor ID: %s\n", id)
			return nil
		},
	}
	addCmd.Flags().String("first-name", "", "Doctor first name")
	addCmd.Flags().String("last-name", "", "Doctor last name")
	addCmd.Flags().String("specialization", "", "Medical specialization")
	addCmd.Flags().String("license", "", "License number")
	addCmd.Flags().String("email", "", "Contact email")
	addCmd.Flags().String("phone", "", "Contact phone")
	addCmd.Flags().String("gender", "", "Gender (M/F/O)")
	addCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	addCmd.Flags().String("street", "", "Street address")
	addCmd.Flags().String("city", "", "City")
	addCmd.Flags().String("state", "", "State")
	addCmd.Flags().String("zip", "", "ZIP code")
	addCmd.Flags().String("country", "", "Country (default USA)")
	cmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := setup()
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %-25s %-20s %-15s %s\n", "ID", "NAME", "SPECIALIZATION", "LICENSE", "EMAIL")
			for _, d := range sys.Doctors() {
				fmt.Printf("%-8s %-25s %-20s %-15s %s\n",
					d.DoctorID, "Dr. "+d.FirstName+" "+d.LastName, d.Specialization, d.LicenseNumber, d.Email)
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)

	return cmd
}

func appointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Manage appointments",
	}

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule an appointment between a patient and a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := setup()
			if err != nil {
				return err
			}
			patientID, _ := cmd.Flags().GetString("patient")
			doctorID, _ := cmd.Flags().GetString("doctor")
			date, _ := cmd.Flags().GetString("date")
			timeStr, _ := cmd.Flags().GetString("time")
			reason, _ := cmd.Flags().GetString("reason")

			id, err := sys.ScheduleAppointment(patientID, doctorID, date, timeStr, reason)
			if err != nil {
				return err
			}
			fmt.Printf("Appointment scheduled successfully! Appointment ID: %s\n", id)
			return nil
		},
	}
	scheduleCmd.Flags().String("patient", "", "Patient ID")
	scheduleCmd.Flags().String("doctor", "", "Doctor ID")
	scheduleCmd.Flags().String("date", "", "Date (YYYY-MM-DD)")
	scheduleCmd.Flags().String("time", "", "Time (HH:MM)")
	scheduleCmd.Flags().String("reason", "", "Reason for the visit")
	cmd.AddCommand(scheduleCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := setup()
			if err != nil {
				return err
			}
			patientID, _ := cmd.Flags().GetString("patient")
			appts := sys.Appointments()
			if patientID != "" {
				appts = sys.AppointmentsFor(patientID)
			}
			fmt.Printf("%-10s %-10s %-10s %-12s %-6s %-10s %s\n",
				"ID", "PATIENT", "DOCTOR", "DATE", "TIME", "STATUS", "REASON")
			for _, a := range appts {
				fmt.Printf("%-10s %-10s %-10s %-12s %-6s %-10s %s\n",
					a.AppointmentID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status, a.Reason)
			}
			return nil
		},
	}
	listCmd.Flags().String("patient", "", "Only this patient's appointments")
	cmd.AddCommand(listCmd)

	return cmd
}
