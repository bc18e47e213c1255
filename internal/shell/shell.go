// Package shell drives the terminal menus. It is a thin dispatcher over
// the hospital core: every operation it invokes is directly callable
// without any console attached, and the reader/writer are injected so the
// whole flow is scriptable in tests.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/hospital"
)

// errInputClosed signals EOF on the input stream; the shell saves and
// leaves cleanly, same as an explicit exit.
var errInputClosed = errors.New("input closed")

type menuItem struct {
	id    int
	label string
	run   func() error
}

type Shell struct {
	sys  *hospital.System
	in   *bufio.Reader
	out  io.Writer
	log  zerolog.Logger
	menu []menuItem
}

func New(sys *hospital.System, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	s := &Shell{
		sys: sys,
		in:  bufio.NewReader(in),
		out: out,
		log: logger,
	}
	s.menu = []menuItem{
		{1, "Patient Management", s.managePatients},
		{2, "Doctor Management", s.manageDoctors},
		{3, "Appointment Management", s.manageAppointments},
		{4, "Inpatient Management", s.comingSoon("Inpatient management")},
		{5, "Billing", s.comingSoon("Billing")},
		{6, "Reports", s.comingSoon("Reports")},
		{7, "Exit", nil},
	}
	return s
}

// Run loops over the main menu until the operator exits or input closes.
// Both paths attempt a final save.
func (s *Shell) Run() error {
	for {
		s.displayMainMenu()
		choice, err := s.prompt(fmt.Sprintf("Enter your choice (1-%d): ", len(s.menu)))
		if err != nil {
			return s.exit()
		}
		item, ok := s.lookup(choice)
		if !ok {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number between 1 and %d.\n", len(s.menu))
			s.pause()
			continue
		}
		if item.run == nil {
			return s.exit()
		}
		if err := item.run(); err != nil {
			return s.exit()
		}
	}
}

func (s *Shell) lookup(choice string) (menuItem, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil {
		return menuItem{}, false
	}
	for _, item := range s.menu {
		if item.id == n {
			return item, true
		}
	}
	return menuItem{}, false
}

func (s *Shell) displayMainMenu() {
	s.banner("HOSPITAL MANAGEMENT SYSTEM", 50)
	for _, item := range s.menu {
		fmt.Fprintf(s.out, "%d. %s\n", item.id, item.label)
	}
	fmt.Fprintln(s.out, strings.Repeat("=", 50))
}

func (s *Shell) exit() error {
	if err := s.sys.Save(); err != nil {
		s.log.Error().Err(err).Msg("final save failed")
		fmt.Fprintf(s.out, "Warning: could not save data: %v\n", err)
	}
	fmt.Fprintln(s.out, "Exiting Hospital Management System. Goodbye!")
	return nil
}

func (s *Shell) comingSoon(name string) func() error {
	return func() error {
		fmt.Fprintf(s.out, "%s module coming soon!\n", name)
		s.pause()
		return nil
	}
}

// -- input helpers --

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", errInputClosed
	}
	return line, nil
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptValid re-prompts until the validator accepts the input.
func (s *Shell) promptValid(label string, valid func(string) bool, invalidMsg string) (string, error) {
	for {
		v, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(v) {
			return v, nil
		}
		fmt.Fprintln(s.out, invalidMsg)
	}
}

func (s *Shell) pause() {
	fmt.Fprint(s.out, "\nPress Enter to continue...")
	_, _ = s.readLine()
}

func (s *Shell) banner(title string, width int) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", width))
	fmt.Fprintln(s.out, center(title, width))
	fmt.Fprintln(s.out, strings.Repeat("=", width))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
