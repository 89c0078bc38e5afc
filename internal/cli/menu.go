package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errInvalidNumber = errors.New("invalid number")

const menuText = `
1) Search by Country
2) Search by Year Range
3) Highest/Lowest K by Extreme Events
4) Top-N CO2 in a Year
5) Sort by Temperature Anomaly
6) Sort by GDP in a Year
7) Average Metrics for Country
8) Country Urbanization/Deforestation
9) Exit
`

// Menu is the interactive numbered menu. It reads answers line by line from
// in and hands each request to a Runner.
type Menu struct {
	run *Runner
	in  io.Reader
	out io.Writer

	lines <-chan line
}

// line is one input line or the error that ended the input.
type line struct {
	text string
	err  error
}

func NewMenu(run *Runner, in io.Reader, out io.Writer) *Menu {
	return &Menu{run: run, in: in, out: out}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The channel is closed at end of input.
func readLines(ctx context.Context, in io.Reader) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}

func (m *Menu) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(m.out)
		return "", ctx.Err()
	case l, ok := <-m.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (m *Menu) askInt(ctx context.Context, prompt string) (int, error) {
	s, err := m.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

// askBool treats only "true" (any case) as true.
func (m *Menu) askBool(ctx context.Context, prompt string) (bool, error) {
	s, err := m.ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(s, "true"), nil
}

// Run loops until the user picks Exit, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.lines = readLines(ctx, m.in)

	for ctx.Err() == nil {
		fmt.Fprint(m.out, menuText)
		choice, err := m.ask(ctx, "Choice: ")
		if err != nil {
			return ignoreEOF(err)
		}
		if choice == "9" {
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		}

		err = m.dispatch(ctx, choice)
		switch {
		case errors.Is(err, errInvalidNumber):
			fmt.Fprintln(m.out, "Invalid number.")
		case err != nil:
			return ignoreEOF(err)
		}
	}
	return ctx.Err()
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		c, err := m.ask(ctx, "Country (exact label, e.g., Country_103): ")
		if err != nil {
			return err
		}
		m.run.Country(c)

	case "2":
		s, err := m.askInt(ctx, "Start year: ")
		if err != nil {
			return err
		}
		e, err := m.askInt(ctx, "End year: ")
		if err != nil {
			return err
		}
		m.run.YearRange(s, e)

	case "3":
		k, err := m.askInt(ctx, "K: ")
		if err != nil {
			return err
		}
		hi, err := m.askBool(ctx, "Highest(true) or Lowest(false): ")
		if err != nil {
			return err
		}
		m.run.ExtremeEvents(k, hi)

	case "4":
		y, err := m.askInt(ctx, "Year: ")
		if err != nil {
			return err
		}
		n, err := m.askInt(ctx, "Top N: ")
		if err != nil {
			return err
		}
		m.run.TopCO2(y, n)

	case "5":
		asc, err := m.askBool(ctx, "Ascending (true/false): ")
		if err != nil {
			return err
		}
		m.run.SortByTemperature(asc)

	case "6":
		y, err := m.askInt(ctx, "Year: ")
		if err != nil {
			return err
		}
		asc, err := m.askBool(ctx, "Ascending (true/false): ")
		if err != nil {
			return err
		}
		m.run.SortByGDP(y, asc)

	case "7":
		c, err := m.ask(ctx, "Country: ")
		if err != nil {
			return err
		}
		return m.run.Averages(c)

	case "8":
		c, err := m.ask(ctx, "Country: ")
		if err != nil {
			return err
		}
		return m.run.LandUse(c)

	default:
		fmt.Fprintln(m.out, "Invalid choice.")
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
