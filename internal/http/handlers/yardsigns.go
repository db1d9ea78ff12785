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

type yardSignRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Quantity int    `json:"quantity"`
}

func (req *yardSignRequest) validate() map[string]string {
	fields := make(map[string]string)
	if req.Name == "" {
		fields["name"] = "Name is required"
	}
	if !validEmail(req.Email) {
		fields["email"] = "Valid email is required"
	}
	if req.Address == "" {
		fields["address"] = "Address is required"
	}
	if req.Quantity < 0 {
		fields["quantity"] = "Quantity must be at least 1"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func yardSignPayload(r domain.YardSignRequest) map[string]any {
	return map[string]any{
		"id":        r.ID,
		"name":      r.Name,
		"email":     r.Email,
		"phone":     r.Phone,
		"address":   r.Address,
		"quantity":  r.Quantity,
		"createdAt": r.CreatedAt,
	}
}

func (a *App) YardSignsCreate(w http.ResponseWriter, r *http.Request) {
	var req yardSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if fields := req.validate(); fields != nil {
		a.invalid(w, fields)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	created, err := a.YardSigns.Create(r.Context(), &domain.YardSignRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Quantity: req.Quantity,
	})
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to create yard sign request")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create yard sign request")
		return
	}

	a.record(r, map[string]int{"yard_signs": 1})
	a.notify(r, notify.EventYardSign, yardSignPayload(*created))
	a.json(w, http.StatusOK, map[string]any{"success": true, "request": yardSignPayload(*created)})
}

func (a *App) YardSignsList(w http.ResponseWriter, r *http.Request) {
	listView(a, w, r, a.YardSigns.List, console.YardSignFields, console.YardSignSearchFields, yardSignPayload)
}

func (a *App) YardSignsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	var req yardSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if fields := req.validate(); fields != nil {
		a.invalid(w, fields)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	updated, err := a.YardSigns.Update(r.Context(), id, &domain.YardSignRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Quantity: req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "yard sign request not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to update yard sign request")
		return
	}
	a.json(w, http.StatusOK, yardSignPayload(*updated))
}

func (a *App) YardSignsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	if err := a.YardSigns.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "yard sign request not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete yard sign request")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}

func (a *App) YardSignsBulkDelete(w http.ResponseWriter, r *http.Request) {
	bulkDelete(a, w, r, a.YardSigns.List,
		func(req domain.YardSignRequest) int { return req.ID },
		a.YardSigns.Delete)
}

func (a *App) YardSignsExport(w http.ResponseWriter, r *http.Request) {
	exportCSV(a, w, r, a.YardSigns.List,
		func(req domain.YardSignRequest) int { return req.ID },
		console.YardSignColumns, "yard-sign-requests")
}
