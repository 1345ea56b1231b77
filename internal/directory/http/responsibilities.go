package http

import (
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
)

// ResponsibilitiesHandler handles the responsibility admin endpoints.
type ResponsibilitiesHandler struct {
	ResponsibilityService *service.ResponsibilityService
}

// HandleList handles GET /v1/responsibilities
//
//	@Summary		List responsibilities
//	@Description	Available responsibilities come first, then by name. q searches name, description and slug.
//	@Tags			Responsibilities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q			query		string	false	"Search text"
//	@Param			available	query		bool	false	"Availability flag"
//	@Success		200			{object}	directorysdk.ListResponsibilitiesResponse
//	@Failure		400			{object}	directorysdk.ValidationErrorResponse
//	@Router			/v1/responsibilities [get].
func (h *ResponsibilitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	available, err := httpx.QueryBool(r, "available")
	if err != nil {
		directorysdk.NewValidationError("invalid query", map[string]string{"available": "must be true or false"}).
			WriteError(w)
		return
	}

	rs, err := h.ResponsibilityService.List(r.Context(), domain.ResponsibilityFilter{
		Search:    r.URL.Query().Get("q"),
		Available: available,
	})
	if err != nil {
		writeServiceError(w, r, err, "responsibilities")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, directorysdk.ListResponsibilitiesResponse{
		Responsibilities: mapSlice(rs, toResponsibility),
	})
}

// HandleCreate handles POST /v1/responsibilities
//
//	@Summary	Create responsibility
//	@Tags		Responsibilities
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		directorysdk.ResponsibilityRequest	true	"New responsibility"
//	@Success	201		{object}	directorysdk.Responsibility
//	@Failure	400		{object}	directorysdk.ValidationErrorResponse
//	@Failure	409		{object}	directorysdk.ErrorResponse	"Slug already in use"
//	@Router		/v1/responsibilities [post].
func (h *ResponsibilitiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req directorysdk.ResponsibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.ResponsibilityService.Create(r.Context(), service.ResponsibilityInput{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		writeServiceError(w, r, err, "responsibility")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toResponsibility(resp))
}

// HandleGet handles GET /v1/responsibilities/{id}
//
//	@Summary	Get responsibility
//	@Tags		Responsibilities
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Responsibility ID"
//	@Success	200	{object}	directorysdk.Responsibility
//	@Failure	404	{object}	directorysdk.ErrorResponse
//	@Router		/v1/responsibilities/{id} [get].
func (h *ResponsibilitiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ResponsibilityService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "responsibility")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponsibility(resp))
}

// HandleUpdate handles PATCH /v1/responsibilities/{id}
//
//	@Summary		Update responsibility
//	@Description	Making a responsibility unavailable keeps the roles already granted.
//	@Tags			Responsibilities
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string									true	"Responsibility ID"
//	@Param			request	body		directorysdk.UpdateResponsibilityRequest	true	"Fields to change"
//	@Success		200		{object}	directorysdk.Responsibility
//	@Failure		400		{object}	directorysdk.ValidationErrorResponse
//	@Failure		404		{object}	directorysdk.ErrorResponse
//	@Failure		409		{object}	directorysdk.ErrorResponse	"Slug already in use"
//	@Router			/v1/responsibilities/{id} [patch].
func (h *ResponsibilitiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req directorysdk.UpdateResponsibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cur, err := h.ResponsibilityService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err, "responsibility")
		return
	}

	available := cur.IsAvailable
	set(&available, req.IsAvailable)
	in := service.ResponsibilityInput{
		Name:        cur.Name,
		Description: cur.Description,
		Slug:        cur.Slug,
		IsAvailable: &available,
	}
	set(&in.Name, req.Name)
	set(&in.Description, req.Description)
	set(&in.Slug, req.Slug)

	updated, err := h.ResponsibilityService.Update(ctx, id, in)
	if err != nil {
		writeServiceError(w, r, err, "responsibility")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponsibility(updated))
}

// HandleDelete handles DELETE /v1/responsibilities/{id}
//
//	@Summary		Delete responsibility
//	@Description	Deletes the responsibility and every role granting it.
//	@Tags			Responsibilities
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Responsibility ID"
//	@Success		204	"Responsibility deleted"
//	@Failure		404	{object}	directorysdk.ErrorResponse
//	@Router			/v1/responsibilities/{id} [delete].
func (h *ResponsibilitiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ResponsibilityService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "responsibility")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
