package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"purpleairdb/internal/dataset"
	"purpleairdb/internal/source"
)

// Menu drives one interactive session over a DataSet. Input and output
// are injected so sessions can be scripted in tests.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer
	ds  *dataset.DataSet
	src source.Source
	log *slog.Logger
	eof bool
}

func New(in io.Reader, out io.Writer, ds *dataset.DataSet, src source.Source, logger *slog.Logger) *Menu {
	return &Menu{
		in:  bufio.NewScanner(in),
		out: out,
		ds:  ds,
		src: src,
		log: logger,
	}
}

// Run greets the user, collects a header, and enters the main loop. It
// returns when the user quits or input reaches EOF.
func (m *Menu) Run() {
	name := m.prompt("Please enter your name: ")
	fmt.Fprintf(m.out, "Hello %s, welcome to the Air Quality database.\n", name)

	for {
		header := m.prompt("Now please enter a header for the menu: ")
		if err := m.ds.SetHeader(header); err != nil {
			fmt.Fprintf(m.out, "Header must be a string that is at most %d characters long.\n",
				dataset.MaxHeaderLen)
			if m.eof {
				return
			}
			continue
		}
		break
	}
	fmt.Fprint(m.out, "\n\n")

	m.loop()
}

func (m *Menu) loop() {
	for {
		fmt.Fprintln(m.out, m.ds.Header())
		m.printMenu()

		choice := m.prompt("What is your choice? ")
		if m.eof {
			return
		}

		n, err := strconv.Atoi(strings.TrimSpace(choice))
		if err != nil {
			fmt.Fprint(m.out, "Please enter a number next time.\n\n")
			continue
		}

		switch n {
		case 1:
			m.displayCrossTable(dataset.StatAvg)
		case 2:
			m.displayCrossTable(dataset.StatMin)
		case 3:
			m.displayCrossTable(dataset.StatMax)
		case 4:
			m.manageFilters()
		case 5:
			m.loadData()
		case 9:
			fmt.Fprint(m.out, "Exiting database. Goodbye.\n\n")
			return
		default:
			fmt.Fprint(m.out, "That is not a valid selection. Please choose something else.\n\n")
			continue
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "Main Menu")
	fmt.Fprintln(m.out, "1 - Print Average Particulate Concentration by Zip Code and Time")
	fmt.Fprintln(m.out, "2 - Print Minimum Particulate Concentration by Zip Code and Time")
	fmt.Fprintln(m.out, "3 - Print Maximum Particulate Concentration by Zip Code and Time")
	fmt.Fprintln(m.out, "4 - Adjust Zip Code Filters")
	fmt.Fprintln(m.out, "5 - Load Data")
	fmt.Fprintln(m.out, "9 - Quit")
}

func (m *Menu) loadData() {
	rows, err := m.src.Rows()
	if err != nil {
		m.log.Error("load failed", "source", m.src.Name(), "err", err)
		fmt.Fprintln(m.out, "Unable to load the data set. Please check the data file.")
		return
	}
	m.ds.Load(rows)
	fmt.Fprintf(m.out, "%d lines loaded.\n", len(rows))
}

// prompt prints text and returns the next input line. On EOF it returns
// the empty string and marks the session finished.
func (m *Menu) prompt(text string) string {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		m.eof = true
		return ""
	}
	return m.in.Text()
}
