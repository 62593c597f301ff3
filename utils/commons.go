package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sshah229/Comcast/models"
)

var cityPattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N} .,'()\-]{1,100}$`)

func IsValidCity(city string) bool {
	city = strings.TrimSpace(city)
	if city == "" {
		return false
	}
	return cityPattern.MatchString(city)
}

func ConvertTemperatures(celsius float64) models.Temperature {
	fahrenheit := celsius*1.8 + 32
	kelvin := celsius + 273

	return models.Temperature{
		TempC: celsius,
		TempF: fahrenheit,
		TempK: kelvin,
	}
}

// FormatWeather renders a snapshot as the multi-line block shown in the console.
func FormatWeather(w models.Weather) string {
	location := w.City
	if location == "" {
		location = "?"
	}
	if w.Country != "" {
		location += ", " + w.Country
	}

	description := w.Description
	if description == "" {
		description = "?"
	}

	updated := "?"
	if !w.Updated.IsZero() {
		updated = w.Updated.Format("2006-01-02 15:04:05")
	}

	lines := []string{
		fmt.Sprintf("City: %s", location),
		fmt.Sprintf("Weather: %s°C (feels %s°C), %s", formatDecimal(w.TempC), formatDecimal(w.FeelsLikeC), description),
		fmt.Sprintf("Humidity: %d%%", w.Humidity),
		fmt.Sprintf("Wind: %s m/s", formatDecimal(w.WindSpeed)),
		fmt.Sprintf("Updated (local): %s", updated),
	}
	return strings.Join(lines, "\n")
}

func formatDecimal(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
