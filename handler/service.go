package handler

import (
	"context"
	"log"
	"strings"

	"github.com/sshah229/Comcast/favourites"
	"github.com/sshah229/Comcast/models"
	"github.com/sshah229/Comcast/utils"
)

// Refreshed is the outcome of fetching current weather for one favourite.
type Refreshed struct {
	Position  int
	Favourite models.Favourite
	Err       error
}

// AddFavourite checks the list can take city, confirms the city exists with
// the provider and stores it with the fetched snapshot. A failure at any step
// leaves the list untouched.
func AddFavourite(ctx context.Context, client utils.WeatherAPIClient, list *favourites.List, city string) (models.Favourite, error) {
	city = strings.TrimSpace(city)
	if err := list.CheckAdd(city); err != nil {
		return models.Favourite{}, err
	}

	weather, err := client.GetWeather(ctx, city)
	if err != nil {
		return models.Favourite{}, err
	}

	fav := models.Favourite{City: city, Weather: &weather}
	if err := list.Add(fav); err != nil {
		return models.Favourite{}, err
	}
	return fav, nil
}

// UpdateFavourite points the favourite at index (0-based) to a new city and
// returns the replaced entry.
func UpdateFavourite(ctx context.Context, client utils.WeatherAPIClient, list *favourites.List, index int, city string) (models.Favourite, models.Favourite, error) {
	city = strings.TrimSpace(city)
	items := list.Items()
	if err := list.CheckUpdate(index, city); err != nil {
		return models.Favourite{}, models.Favourite{}, err
	}

	var previous models.Favourite
	if index < len(items) {
		previous = items[index]
	}

	weather, err := client.GetWeather(ctx, city)
	if err != nil {
		return models.Favourite{}, models.Favourite{}, err
	}

	fav := models.Favourite{City: city, Weather: &weather}
	if err := list.Update(index, fav); err != nil {
		return models.Favourite{}, models.Favourite{}, err
	}
	return previous, fav, nil
}

// RefreshFavourites fetches current weather for every favourite in order.
// Failed lookups keep the previous snapshot.
func RefreshFavourites(ctx context.Context, client utils.WeatherAPIClient, list *favourites.List) []Refreshed {
	items := list.Items()
	results := make([]Refreshed, 0, len(items))

	for i, fav := range items {
		weather, err := client.GetWeather(ctx, fav.City)
		if err != nil {
			results = append(results, Refreshed{Position: i + 1, Favourite: fav, Err: err})
			continue
		}

		fav.Weather = &weather
		if err := list.SetWeather(fav.City, weather); err != nil {
			log.Printf("favourite %s changed during refresh: %v", fav.City, err)
		}
		results = append(results, Refreshed{Position: i + 1, Favourite: fav})
	}
	return results
}
