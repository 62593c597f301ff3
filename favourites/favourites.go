package favourites

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sshah229/Comcast/models"
)

const DefaultCapacity = 3

var (
	ErrFull      = errors.New("favourites is full")
	ErrDuplicate = errors.New("already in favourites")
	ErrEmptyCity = errors.New("city name cannot be empty")
	ErrNotFound  = errors.New("not in favourites")
)

// List is a bounded, insertion-ordered set of favourite cities. A full list
// rejects new entries instead of evicting old ones.
type List struct {
	mu       sync.Mutex
	capacity int
	items    []models.Favourite
}

func New(capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{
		capacity: capacity,
		items:    make([]models.Favourite, 0, capacity),
	}
}

func (l *List) Capacity() int {
	return l.capacity
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *List) Full() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items) >= l.capacity
}

// Items returns a copy of the favourites in insertion order.
func (l *List) Items() []models.Favourite {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]models.Favourite, len(l.items))
	for i, fav := range l.items {
		items[i] = copyFavourite(fav)
	}
	return items
}

// CheckAdd reports the error Add would return for city without changing the list.
func (l *List) CheckAdd(city string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkAdd(strings.TrimSpace(city))
}

func (l *List) Add(fav models.Favourite) error {
	fav.City = strings.TrimSpace(fav.City)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkAdd(fav.City); err != nil {
		return err
	}
	l.items = append(l.items, copyFavourite(fav))
	return nil
}

// CheckUpdate reports the error Update would return without changing the list.
func (l *List) CheckUpdate(index int, city string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkUpdate(index, strings.TrimSpace(city))
}

// Update replaces the favourite at index (0-based) with a new location.
func (l *List) Update(index int, fav models.Favourite) error {
	fav.City = strings.TrimSpace(fav.City)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkUpdate(index, fav.City); err != nil {
		return err
	}
	l.items[index] = copyFavourite(fav)
	return nil
}

func (l *List) Remove(index int) (models.Favourite, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkIndex(index); err != nil {
		return models.Favourite{}, err
	}

	removed := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return removed, nil
}

func (l *List) RemoveCity(city string) error {
	city = strings.TrimSpace(city)

	l.mu.Lock()
	defer l.mu.Unlock()

	index := l.indexOf(city)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, city)
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// SetWeather stores a freshly fetched snapshot for the favourite holding city.
func (l *List) SetWeather(city string, w models.Weather) error {
	city = strings.TrimSpace(city)

	l.mu.Lock()
	defer l.mu.Unlock()

	index := l.indexOf(city)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, city)
	}
	l.items[index].Weather = &w
	return nil
}

func (l *List) checkAdd(city string) error {
	if city == "" {
		return ErrEmptyCity
	}
	if l.indexOf(city) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, city)
	}
	if len(l.items) >= l.capacity {
		return fmt.Errorf("%w (max %d), remove one first", ErrFull, l.capacity)
	}
	return nil
}

func (l *List) checkUpdate(index int, city string) error {
	if city == "" {
		return ErrEmptyCity
	}
	if err := l.checkIndex(index); err != nil {
		return err
	}
	if existing := l.indexOf(city); existing >= 0 && existing != index {
		return fmt.Errorf("%w: %s", ErrDuplicate, city)
	}
	return nil
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: no favourite #%d", ErrNotFound, index+1)
	}
	return nil
}

func (l *List) indexOf(city string) int {
	for i, fav := range l.items {
		if strings.EqualFold(fav.City, city) {
			return i
		}
	}
	return -1
}

func copyFavourite(fav models.Favourite) models.Favourite {
	if fav.Weather != nil {
		w := *fav.Weather
		fav.Weather = &w
	}
	return fav
}
