package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign/internal/console"
	"campaign/internal/domain"
	"campaign/internal/notify"
)

type volunteerRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Interests []string `json:"interests"`
}

func (req *volunteerRequest) validate() map[string]string {
	fields := make(map[string]string)
	if req.Name == "" {
		fields["name"] = "Name is required"
	}
	if !validEmail(req.Email) {
		fields["email"] = "Valid email is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func volunteerPayload(v domain.Volunteer) map[string]any {
	return map[string]any{
		"id":        v.ID,
		"name":      v.Name,
		"email":     v.Email,
		"phone":     v.Phone,
		"interests": v.Interests,
		"createdAt": v.CreatedAt,
	}
}

func (a *App) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if fields := req.validate(); fields != nil {
		a.invalid(w, fields)
		return
	}

	created, err := a.Volunteers.Create(r.Context(), &domain.Volunteer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interests: req.Interests,
	})
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to create volunteer")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create volunteer")
		return
	}

	a.record(r, map[string]int{"volunteers": 1})
	a.notify(r, notify.EventVolunteer, volunteerPayload(*created))
	a.json(w, http.StatusOK, map[string]any{"success": true, "volunteer": volunteerPayload(*created)})
}

func (a *App) VolunteersList(w http.ResponseWriter, r *http.Request) {
	listView(a, w, r, a.Volunteers.List, console.VolunteerFields, console.VolunteerSearchFields, volunteerPayload)
}

func (a *App) VolunteersUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if fields := req.validate(); fields != nil {
		a.invalid(w, fields)
		return
	}

	updated, err := a.Volunteers.Update(r.Context(), id, &domain.Volunteer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interests: req.Interests,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "volunteer not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to update volunteer")
		return
	}
	a.json(w, http.StatusOK, volunteerPayload(*updated))
}

func (a *App) VolunteersDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	if err := a.Volunteers.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "volunteer not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete volunteer")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}

func (a *App) VolunteersBulkDelete(w http.ResponseWriter, r *http.Request) {
	bulkDelete(a, w, r, a.Volunteers.List,
		func(v domain.Volunteer) int { return v.ID },
		a.Volunteers.Delete)
}

func (a *App) VolunteersExport(w http.ResponseWriter, r *http.Request) {
	exportCSV(a, w, r, a.Volunteers.List,
		func(v domain.Volunteer) int { return v.ID },
		console.VolunteerColumns, "volunteers")
}
