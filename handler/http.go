package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sshah229/Comcast/favourites"
	"github.com/sshah229/Comcast/models"
	"github.com/sshah229/Comcast/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

type CityRequest struct {
	City string `json:"city"`
}

type WeatherResponse struct {
	Weather     models.Weather     `json:"weather"`
	Temperature models.Temperature `json:"temperature"`
}

type FavouritesResponse struct {
	Capacity   int              `json:"capacity"`
	Favourites []FavouriteEntry `json:"favourites"`
}

type FavouriteEntry struct {
	Position int             `json:"position"`
	City     string          `json:"city"`
	Weather  *models.Weather `json:"weather,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type FavouritesHandler struct {
	Client     utils.WeatherAPIClient
	Favourites *favourites.List
}

// NewRouter wires the handler into a chi router with the usual middlewares.
func NewRouter(h *FavouritesHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.SetHeader("Content-Type", "application/json"))
	r.Use(extractTraceContext)

	r.Get("/weather", h.GetWeather)
	r.Route("/favourites", func(r chi.Router) {
		r.Get("/", h.ListFavourites)
		r.Post("/", h.AddFavourite)
		r.Put("/{position}", h.UpdateFavourite)
		r.Delete("/{position}", h.RemoveFavourite)
	})

	return r
}

func extractTraceContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *FavouritesHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("weather-http").Start(r.Context(), "get-weather-handler")
	defer span.End()

	city := r.URL.Query().Get("city")
	span.SetAttributes(attribute.String("city", city))

	if !utils.IsValidCity(city) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Message: "invalid city"})
		return
	}

	weather, err := h.Client.GetWeather(ctx, city)
	if err != nil {
		writeError(w, err)
		return
	}

	temps := utils.ConvertTemperatures(weather.TempC)
	temps.City = weather.City
	writeJSON(w, http.StatusOK, WeatherResponse{Weather: weather, Temperature: temps})
}

func (h *FavouritesHandler) ListFavourites(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("weather-http").Start(r.Context(), "list-favourites")
	defer span.End()

	results := RefreshFavourites(ctx, h.Client, h.Favourites)
	span.SetAttributes(attribute.Int("favourites.count", len(results)))

	resp := FavouritesResponse{Capacity: h.Favourites.Capacity(), Favourites: make([]FavouriteEntry, 0, len(results))}
	for _, res := range results {
		entry := FavouriteEntry{Position: res.Position, City: res.Favourite.City, Weather: res.Favourite.Weather}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		resp.Favourites = append(resp.Favourites, entry)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FavouritesHandler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("weather-http").Start(r.Context(), "add-favourite")
	defer span.End()

	city, ok := decodeCity(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("city", city))

	fav, err := AddFavourite(ctx, h.Client, h.Favourites, city)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, FavouriteEntry{Position: h.Favourites.Len(), City: fav.City, Weather: fav.Weather})
}

func (h *FavouritesHandler) UpdateFavourite(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("weather-http").Start(r.Context(), "update-favourite")
	defer span.End()

	position, ok := parsePosition(w, r)
	if !ok {
		return
	}
	city, ok := decodeCity(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("city", city), attribute.Int("position", position))

	_, fav, err := UpdateFavourite(ctx, h.Client, h.Favourites, position-1, city)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FavouriteEntry{Position: position, City: fav.City, Weather: fav.Weather})
}

func (h *FavouritesHandler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	position, ok := parsePosition(w, r)
	if !ok {
		return
	}

	if _, err := h.Favourites.Remove(position - 1); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeCity(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !utils.IsValidCity(req.City) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Message: "invalid city"})
		return "", false
	}
	return req.City, true
}

func parsePosition(w http.ResponseWriter, r *http.Request) (int, bool) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil || position < 1 {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "favourite not found"})
		return 0, false
	}
	return position, true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, utils.ErrCityNotFound), errors.Is(err, favourites.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, favourites.ErrFull), errors.Is(err, favourites.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, favourites.ErrEmptyCity):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, ErrorResponse{Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
