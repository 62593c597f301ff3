package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sshah229/Comcast/favourites"
	"github.com/sshah229/Comcast/models"
	"github.com/sshah229/Comcast/utils"
)

type Choice string

const (
	ChoiceExit   Choice = "0"
	ChoiceSearch Choice = "1"
	ChoiceAdd    Choice = "2"
	ChoiceList   Choice = "3"
	ChoiceUpdate Choice = "4"
	ChoiceRemove Choice = "5"
)

const menuText = `
OpenWeather CLI
1. Search weather for a city
2. Add a city to favourites
3. List favourite cities (with current weather)
4. Update a favourite (replace its city)
5. Remove a favourite
0. Exit
`

// Menu drives the interactive console session over in and out.
type Menu struct {
	client     utils.WeatherAPIClient
	favourites *favourites.List
	in         *bufio.Scanner
	out        io.Writer
}

func NewMenu(client utils.WeatherAPIClient, list *favourites.List, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		client:     client,
		favourites: list,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			fmt.Fprintln(m.out, "\nGoodbye!")
			return
		}

		switch Choice(choice) {
		case ChoiceSearch:
			m.Search(ctx)
		case ChoiceAdd:
			m.Add(ctx)
		case ChoiceList:
			m.List(ctx)
		case ChoiceUpdate:
			m.Update(ctx)
		case ChoiceRemove:
			m.Remove()
		case ChoiceExit:
			fmt.Fprintln(m.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
}

func (m *Menu) Search(ctx context.Context) {
	city, ok := m.readCity("Enter city name: ")
	if !ok {
		return
	}

	weather, err := m.client.GetWeather(ctx, city)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "\n%s\n\n", utils.FormatWeather(weather))
}

func (m *Menu) Add(ctx context.Context) {
	city, ok := m.readCity("City to add to favourites: ")
	if !ok {
		return
	}

	fav, err := AddFavourite(ctx, m.client, m.favourites, city)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Added to favourites: %s\n", fav.City)
}

func (m *Menu) List(ctx context.Context) {
	if m.favourites.Len() == 0 {
		fmt.Fprintln(m.out, "No favourites yet.")
		return
	}

	results := RefreshFavourites(ctx, m.client, m.favourites)
	fmt.Fprintf(m.out, "\nFavourites (%d/%d):\n\n", len(results), m.favourites.Capacity())
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(m.out, "[%d] %s -> Error: %v\n", r.Position, r.Favourite.City, r.Err)
			continue
		}
		fmt.Fprintf(m.out, "[%d] %s\n%s\n-\n", r.Position, r.Favourite.City, utils.FormatWeather(*r.Favourite.Weather))
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) Update(ctx context.Context) {
	items := m.favourites.Items()
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No favourites to update. Add some first.")
		return
	}

	m.printFavourites(items)
	index, ok := m.readIndex("Number of the favourite to update (blank to cancel): ", len(items))
	if !ok {
		return
	}

	city, ok := m.readCity("New city: ")
	if !ok {
		return
	}

	previous, fav, err := UpdateFavourite(ctx, m.client, m.favourites, index, city)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Updated favourite #%d: %s -> %s\n", index+1, previous.City, fav.City)
}

func (m *Menu) Remove() {
	items := m.favourites.Items()
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No favourites to remove.")
		return
	}

	m.printFavourites(items)
	index, ok := m.readIndex("Number of the favourite to remove (blank to cancel): ", len(items))
	if !ok {
		return
	}

	removed, err := m.favourites.Remove(index)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Removed: %s\n", removed.City)
}

// prompt returns false once input is exhausted.
func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readCity(text string) (string, bool) {
	city, _ := m.prompt(text)
	if city == "" {
		fmt.Fprintln(m.out, "No city entered.")
		return "", false
	}
	if !utils.IsValidCity(city) {
		fmt.Fprintln(m.out, "Invalid city name.")
		return "", false
	}
	return city, true
}

// readIndex reads a 1-based selection and returns it 0-based.
func (m *Menu) readIndex(text string, count int) (int, bool) {
	raw, _ := m.prompt(text)
	if raw == "" {
		fmt.Fprintln(m.out, "Cancelled.")
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > count {
		fmt.Fprintf(m.out, "Error: invalid selection %q, choose 1-%d\n", raw, count)
		return 0, false
	}
	return n - 1, true
}

func (m *Menu) printFavourites(items []models.Favourite) {
	fmt.Fprintln(m.out, "Current favourites:")
	for i, fav := range items {
		fmt.Fprintf(m.out, " %d. %s\n", i+1, fav.City)
	}
}

func (m *Menu) printError(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
