package models

import "time"

type Temperature struct {
	City  string  `json:"city"`
	TempC float64 `json:"temp_C"`
	TempF float64 `json:"temp_F"`
	TempK float64 `json:"temp_K"`
}

// Weather is the snapshot kept for a location after a lookup.
type Weather struct {
	City        string    `json:"city"`
	Country     string    `json:"country,omitempty"`
	TempC       float64   `json:"temp_C"`
	FeelsLikeC  float64   `json:"feels_like_C"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	Updated     time.Time `json:"updated"`
}

type Favourite struct {
	City    string   `json:"city"`
	Weather *Weather `json:"weather,omitempty"`
}

type OpenWeather struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Dt       int64 `json:"dt"`
	Timezone int64 `json:"timezone"`
}

type OpenWeatherError struct {
	Message string `json:"message"`
}

// ToWeather flattens the provider payload. Updated is the location's local
// wall clock expressed in UTC, the way the provider's dt and timezone offset
// combine.
func (o OpenWeather) ToWeather() Weather {
	w := Weather{
		City:       o.Name,
		Country:    o.Sys.Country,
		TempC:      o.Main.Temp,
		FeelsLikeC: o.Main.FeelsLike,
		Humidity:   o.Main.Humidity,
		WindSpeed:  o.Wind.Speed,
	}
	if len(o.Weather) > 0 {
		w.Description = o.Weather[0].Description
	}
	if o.Dt != 0 {
		w.Updated = time.Unix(o.Dt+o.Timezone, 0).UTC()
	}
	return w
}
