package restserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/skywheel/almanac/internal/astro"
	"github.com/skywheel/almanac/internal/eventstore"
	"github.com/skywheel/almanac/internal/log"
	"github.com/skywheel/almanac/pkg/almanac"
	"github.com/skywheel/almanac/pkg/angles"
	"github.com/skywheel/almanac/pkg/eclipse"
	"github.com/skywheel/almanac/pkg/events"
	"github.com/skywheel/almanac/pkg/moonnames"
	"github.com/skywheel/almanac/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the REST server.
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a handlers instance.
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// requestParams resolves the location and instant for a request. The
// configured defaults apply unless overridden with lat, lng, name and
// at query parameters.
func (h *Handlers) requestParams(req *http.Request) (almanac.Location, time.Time, error) {
	loc := h.controller.cfg.Location
	q := req.URL.Query()

	if v := q.Get("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return loc, time.Time{}, errors.New("invalid lat parameter")
		}
		loc.Latitude = lat
	}
	if v := q.Get("lng"); v != "" {
		lng, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return loc, time.Time{}, errors.New("invalid lng parameter")
		}
		loc.Longitude = lng
	}
	if v := q.Get("name"); v != "" {
		loc.Name = v
	}

	at := time.Now().UTC()
	if v := q.Get("at"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return loc, time.Time{}, errors.New("invalid at parameter, expected RFC 3339")
		}
		at = parsed.UTC()
	}

	return loc, at, nil
}

// snapshotFor evaluates the engine for a request's location and
// instant, attaching the calendar events active on the local date.
func (h *Handlers) snapshotFor(req *http.Request) (almanac.Snapshot, error) {
	loc, at, err := h.requestParams(req)
	if err != nil {
		return almanac.Snapshot{}, err
	}

	eng, err := almanac.New(h.controller.provider, h.controller.provider, loc)
	if err != nil {
		return almanac.Snapshot{}, err
	}

	snap, err := eng.Snapshot(at)
	if err != nil {
		return almanac.Snapshot{}, err
	}

	local := angles.LocalApparentTime(at, loc.Longitude)
	active, err := h.controller.store.ActiveOn(int(local.Month()), local.Day())
	if err != nil {
		return almanac.Snapshot{}, err
	}
	snap.Events = almanac.ProjectEvents(local.Year(), active)

	return snap, nil
}

// GetSnapshot returns the full three-ring snapshot.
func (h *Handlers) GetSnapshot(w http.ResponseWriter, req *http.Request) {
	snap, err := h.snapshotFor(req)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, snap)
}

// GetSun returns the solar ring state only.
func (h *Handlers) GetSun(w http.ResponseWriter, req *http.Request) {
	snap, err := h.snapshotFor(req)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, snap.Solar)
}

// GetMoon returns the lunar ring state only.
func (h *Handlers) GetMoon(w http.ResponseWriter, req *http.Request) {
	snap, err := h.snapshotFor(req)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, snap.Lunar)
}

// GetAnnual returns the year ring state only.
func (h *Handlers) GetAnnual(w http.ResponseWriter, req *http.Request) {
	snap, err := h.snapshotFor(req)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, snap.Annual)
}

// GetSeasons returns the equinox and solstice markers for a year.
func (h *Handlers) GetSeasons(w http.ResponseWriter, req *http.Request) {
	year, err := strconv.Atoi(mux.Vars(req)["year"])
	if err != nil {
		h.writeBadRequest(w, req, errors.New("invalid year"))
		return
	}
	h.writeResponse(w, req, astro.SeasonalEvents(year))
}

// GetEclipses returns the eclipses of a year visible from the request
// location.
func (h *Handlers) GetEclipses(w http.ResponseWriter, req *http.Request) {
	year, err := strconv.Atoi(mux.Vars(req)["year"])
	if err != nil {
		h.writeBadRequest(w, req, errors.New("invalid year"))
		return
	}
	loc, _, err := h.requestParams(req)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}

	recs, err := eclipse.VisibleFrom(year, loc.Latitude, loc.Longitude)
	if errors.Is(err, eclipse.ErrYearNotCovered) {
		h.formatter.WriteError(w, req, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writeInternalError(w, req, err)
		return
	}
	if recs == nil {
		recs = []eclipse.Record{}
	}
	h.writeResponse(w, req, recs)
}

// GetMoonName returns the traditional moon name for a month.
func (h *Handlers) GetMoonName(w http.ResponseWriter, req *http.Request) {
	month, err := strconv.Atoi(mux.Vars(req)["month"])
	if err != nil {
		h.writeBadRequest(w, req, errors.New("invalid month"))
		return
	}
	name, err := moonnames.ForMonth(month)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, name)
}

// ListEvents returns all stored calendar events.
func (h *Handlers) ListEvents(w http.ResponseWriter, req *http.Request) {
	all, err := h.controller.store.List()
	if err != nil {
		h.writeInternalError(w, req, err)
		return
	}
	if all == nil {
		all = []events.Event{}
	}
	h.writeResponse(w, req, all)
}

// CreateEvent stores a new calendar event from the request body.
func (h *Handlers) CreateEvent(w http.ResponseWriter, req *http.Request) {
	var e events.Event
	if err := json.NewDecoder(req.Body).Decode(&e); err != nil {
		h.writeBadRequest(w, req, errors.New("invalid event body"))
		return
	}

	created, err := h.controller.store.Create(e)
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, created)
}

// GetEvent returns one event by ID.
func (h *Handlers) GetEvent(w http.ResponseWriter, req *http.Request) {
	e, err := h.controller.store.Get(mux.Vars(req)["id"])
	if errors.Is(err, eventstore.ErrNotFound) {
		h.formatter.WriteError(w, req, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writeInternalError(w, req, err)
		return
	}
	h.writeResponse(w, req, e)
}

// UpdateEvent replaces the event with the ID from the URL.
func (h *Handlers) UpdateEvent(w http.ResponseWriter, req *http.Request) {
	var e events.Event
	if err := json.NewDecoder(req.Body).Decode(&e); err != nil {
		h.writeBadRequest(w, req, errors.New("invalid event body"))
		return
	}
	e.ID = mux.Vars(req)["id"]

	err := h.controller.store.Update(e)
	if errors.Is(err, eventstore.ErrNotFound) {
		h.formatter.WriteError(w, req, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writeBadRequest(w, req, err)
		return
	}
	h.writeResponse(w, req, e)
}

// DeleteEvent removes the event with the ID from the URL.
func (h *Handlers) DeleteEvent(w http.ResponseWriter, req *http.Request) {
	err := h.controller.store.Delete(mux.Vars(req)["id"])
	if errors.Is(err, eventstore.ErrNotFound) {
		h.formatter.WriteError(w, req, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writeInternalError(w, req, err)
		return
	}
	h.writeResponse(w, req, map[string]string{"status": "deleted"})
}

func (h *Handlers) writeResponse(w http.ResponseWriter, req *http.Request, data any) {
	if err := h.formatter.WriteResponse(w, req, data); err != nil {
		log.Errorf("error writing response: %v", err)
	}
}

func (h *Handlers) writeBadRequest(w http.ResponseWriter, req *http.Request, err error) {
	h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
}

func (h *Handlers) writeInternalError(w http.ResponseWriter, req *http.Request, err error) {
	log.Errorf("internal error serving %s: %v", req.URL.Path, err)
	h.formatter.WriteError(w, req, http.StatusInternalServerError, err.Error())
}
