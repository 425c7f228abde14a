package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/services"
)

// Raw answers, either from flags or from the prompts.
type answers struct {
	Origin      string
	Destination string
	Date        string
	Passport    string
	USVisa      string
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints label with its default and returns the trimmed answer. An empty
// answer or end of input selects the default.
func (p *prompter) ask(label, def string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, def)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		fmt.Fprintln(p.out)
		return def, nil
	}

	if v := strings.TrimSpace(p.in.Text()); v != "" {
		return v, nil
	}
	return def, nil
}

// collect prompts for every answer, pre-filled with defaults. The US visa
// question is skipped for US passports.
func (p *prompter) collect(defaults answers) (answers, error) {
	var (
		a   answers
		err error
	)

	if a.Origin, err = p.ask("From (IATA code)", defaults.Origin); err != nil {
		return a, err
	}
	if a.Destination, err = p.ask("To (IATA code)", defaults.Destination); err != nil {
		return a, err
	}
	if a.Date, err = p.ask("Departure date (YYYY-MM-DD or today)", defaults.Date); err != nil {
		return a, err
	}

	codes := make([]string, 0, len(domain.Passports()))
	for _, c := range domain.Passports() {
		codes = append(codes, fmt.Sprintf("%s=%s", c, c.Name()))
	}
	fmt.Fprintf(p.out, "Passport countries: %s\n", strings.Join(codes, ", "))
	if a.Passport, err = p.ask("Passport country", defaults.Passport); err != nil {
		return a, err
	}

	a.USVisa = "no"
	if passport, perr := domain.ParsePassportCountry(a.Passport); perr == nil && !passport.IsUnitedStates() {
		if a.USVisa, err = p.ask("Valid US visa? (yes/no)", defaults.USVisa); err != nil {
			return a, err
		}
	}

	return a, nil
}

// toRequest parses answers into a search request.
func toRequest(a answers, maxResults int) (services.CheckRequest, error) {
	req := services.CheckRequest{
		Origin:      a.Origin,
		Destination: a.Destination,
		MaxResults:  maxResults,
	}

	date := strings.TrimSpace(a.Date)
	if date != "" && !strings.EqualFold(date, "today") {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return req, fmt.Errorf("departure date %q must be YYYY-MM-DD or today", a.Date)
		}
		req.DepartureDate = d
	}

	passport, err := domain.ParsePassportCountry(a.Passport)
	if err != nil {
		return req, err
	}
	req.Passport = passport

	hasVisa, err := parseYesNo(a.USVisa)
	if err != nil {
		return req, err
	}
	req.HasUSVisa = hasVisa && !passport.IsUnitedStates()

	return req, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "no", "false":
		return false, nil
	case "y", "yes", "true":
		return true, nil
	default:
		return false, fmt.Errorf("answer %q must be yes or no", s)
	}
}
