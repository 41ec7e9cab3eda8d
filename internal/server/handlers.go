package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/pfrederiksen/worldcup-dashboard/internal/dashboard"
	"github.com/pfrederiksen/worldcup-dashboard/internal/finals"
	"github.com/pfrederiksen/worldcup-dashboard/internal/logger"
)

// pageData feeds templates/index.html
type pageData struct {
	Theme       dashboard.Theme
	Countries   []string
	Years       []int
	Country     string
	Year        int
	CountryText string
	YearText    string
	Figure      dashboard.Figure
}

// textResponse is the body of the country and year endpoints
type textResponse struct {
	Text string `json:"text"`
}

// finalsResponse is the body of /api/finals
type finalsResponse struct {
	Finals []finals.Record   `json:"finals"`
	Wins   []finals.WinCount `json:"wins"`
}

// handlePage renders the dashboard with the default selections applied.
// GET /
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Theme:       s.dash.Theme(),
		Countries:   s.dash.Countries(),
		Years:       s.dash.Years(),
		Country:     dashboard.DefaultCountry,
		Year:        dashboard.DefaultYear,
		CountryText: s.dash.Country(dashboard.DefaultCountry),
		YearText:    s.dash.Year(dashboard.DefaultYear),
		Figure:      s.dash.Map(dashboard.DefaultCountry),
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("rendering page", logger.Fields{"request_id": requestID(r)}, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleMap returns the choropleth figure.
// GET /api/map?country=
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	s.metrics.ObserveLookup("map", true)
	s.writeJSON(w, r, s.dash.Map(country))
}

// handleCountry describes the selected country's titles.
// GET /api/country?country=
func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	s.metrics.ObserveLookup("country", s.dash.Wins(country) > 0)
	s.writeJSON(w, r, textResponse{Text: s.dash.Country(country)})
}

// handleYear describes the final of the selected year.
// GET /api/year?year=
func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("year")
	year, err := strconv.Atoi(strings.TrimSpace(value))
	s.metrics.ObserveLookup("year", err == nil && s.dash.HasYear(year))
	s.writeJSON(w, r, textResponse{Text: s.dash.YearString(value)})
}

// handleFinals returns the loaded records and win counts.
// GET /api/finals
func (s *Server) handleFinals(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, finalsResponse{
		Finals: s.dash.Records(),
		Wins:   s.dash.Ranked(),
	})
}

// handleHealth reports liveness. Data is loaded before the server starts, so
// a running server is always ready.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]interface{}{
		"status": "ok",
		"finals": len(s.dash.Years()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding response", logger.Fields{"path": r.URL.Path, "request_id": requestID(r)}, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
