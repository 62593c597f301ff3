package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/sshah229/Comcast/models"
)

func TestIsValidCity(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		expected bool
	}{
		{"simple name", "London", true},
		{"name with space", "São Paulo", true},
		{"name with accent", "Brasília", true},
		{"name with hyphen", "Stratford-upon-Avon", true},
		{"name with apostrophe", "L'Aquila", true},
		{"name with country code", "Paris, FR", true},
		{"name with dot", "St. Louis", true},
		{"surrounding spaces", "  Berlin ", true},
		{"empty", "", false},
		{"only spaces", "   ", false},
		{"special chars", "Lon@don", false},
		{"query injection", "London&appid=x", false},
		{"too long", strings.Repeat("a", 101), false},
		{"newline", "Lon\ndon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidCity(tt.city)
			if result != tt.expected {
				t.Errorf("IsValidCity(%q) = %v, want %v", tt.city, result, tt.expected)
			}
		})
	}
}

func TestConvertTemperatures(t *testing.T) {
	tests := []struct {
		name      string
		celsius   float64
		expectedF float64
		expectedK float64
	}{
		{"zero celsius", 0, 32, 273},
		{"room temperature", 25, 77, 298},
		{"body temperature", 37, 98.6, 310},
		{"very cold temperature", -40, -40, 233},
		{"negative decimal temperature", -12.8, 8.96, 260.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertTemperatures(tt.celsius)

			if result.TempC != tt.celsius {
				t.Errorf("ConvertTemperatures(%f).TempC = %f, want %f", tt.celsius, result.TempC, tt.celsius)
			}
			if !almostEqual(result.TempF, tt.expectedF, 0.01) {
				t.Errorf("ConvertTemperatures(%f).TempF = %f, want %f", tt.celsius, result.TempF, tt.expectedF)
			}
			if !almostEqual(result.TempK, tt.expectedK, 0.01) {
				t.Errorf("ConvertTemperatures(%f).TempK = %f, want %f", tt.celsius, result.TempK, tt.expectedK)
			}
		})
	}
}

func almostEqual(a, b, tolerance float64) bool {
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}

func TestFormatWeather(t *testing.T) {
	weather := models.Weather{
		City:        "London",
		Country:     "GB",
		TempC:       12.5,
		FeelsLikeC:  11.25,
		Humidity:    81,
		WindSpeed:   4,
		Description: "light rain",
		Updated:     time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}

	expected := "City: London, GB\n" +
		"Weather: 12.5°C (feels 11.25°C), light rain\n" +
		"Humidity: 81%\n" +
		"Wind: 4 m/s\n" +
		"Updated (local): 2025-01-02 15:04:05"

	if got := FormatWeather(weather); got != expected {
		t.Errorf("FormatWeather() = %q, want %q", got, expected)
	}
}

func TestFormatWeather_MissingFields(t *testing.T) {
	got := FormatWeather(models.Weather{TempC: 10})

	for _, want := range []string{"City: ?", "Weather: 10°C (feels 0°C), ?", "Updated (local): ?"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatWeather() = %q, missing %q", got, want)
		}
	}
}
