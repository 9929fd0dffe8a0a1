package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	landingerrors "storefront/contexts/content-studio/landing-page-service/domain/errors"
	landinghttp "storefront/contexts/content-studio/landing-page-service/transport/http"
)

func writeLandingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, landinghttp.ErrorResponse{Code: code, Message: message})
}

func writeLandingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, landingerrors.ErrTemplateNotFound),
		errors.Is(err, landingerrors.ErrPackNotFound),
		errors.Is(err, landingerrors.ErrPageNotFound),
		errors.Is(err, landingerrors.ErrKitNotFound):
		writeLandingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, landingerrors.ErrIdempotencyKeyRequired):
		writeLandingError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, landingerrors.ErrInvalidRequest):
		writeLandingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, landingerrors.ErrSlugConflict):
		writeLandingError(w, http.StatusConflict, "slug_conflict", err.Error())
	case errors.Is(err, landingerrors.ErrIdempotencyConflict):
		writeLandingError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	default:
		writeLandingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireLandingAuthorization(w http.ResponseWriter, r *http.Request) bool {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeLandingError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return false
	}
	return true
}

func requireLandingRequestID(w http.ResponseWriter, r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-Request-Id")) == "" {
		writeLandingError(w, http.StatusBadRequest, "missing_request_id", "X-Request-Id header is required")
		return false
	}
	return true
}

func requireLandingUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeLandingError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}

func requireLandingIdempotencyKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey == "" {
		writeLandingError(w, http.StatusBadRequest, "idempotency_key_required", "Idempotency-Key header is required")
		return "", false
	}
	return idempotencyKey, true
}

func (s *Server) handleLandingListTemplates(w http.ResponseWriter, r *http.Request) {
	resp, err := s.landing.Handler.ListTemplatesHandler(r.Context())
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingGetTemplate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.landing.Handler.GetTemplateHandler(r.Context(), r.PathValue("template_id"))
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingListPacks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.landing.Handler.ListPacksHandler(r.Context())
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingListKits(w http.ResponseWriter, r *http.Request) {
	resp, err := s.landing.Handler.ListKitsHandler(r.Context())
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingUpsertKit(w http.ResponseWriter, r *http.Request) {
	if !requireLandingAuthorization(w, r) || !requireLandingRequestID(w, r) {
		return
	}
	userID, ok := requireLandingUser(w, r)
	if !ok {
		return
	}
	var req landinghttp.UpsertKitRequest
	if !s.decodeJSON(w, r, &req, writeLandingError) {
		return
	}
	resp, err := s.landing.Handler.UpsertKitHandler(r.Context(), userID, r.PathValue("kit_name"), req)
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingAssemblePage(w http.ResponseWriter, r *http.Request) {
	var req landinghttp.AssemblePageRequest
	if !s.decodeJSON(w, r, &req, writeLandingError) {
		return
	}

	var userID, idempotencyKey string
	if req.SaveAsDraft {
		if !requireLandingAuthorization(w, r) {
			return
		}
		var ok bool
		if userID, ok = requireLandingUser(w, r); !ok {
			return
		}
		if idempotencyKey, ok = requireLandingIdempotencyKey(w, r); !ok {
			return
		}
	}

	resp, err := s.landing.Handler.AssemblePageHandler(r.Context(), userID, idempotencyKey, req)
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	status := http.StatusOK
	if resp.Page != nil && !resp.Replayed {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleLandingGeneratePack(w http.ResponseWriter, r *http.Request) {
	dryRun := false
	if raw := r.URL.Query().Get("dry_run"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeLandingError(w, http.StatusBadRequest, "invalid_dry_run", "dry_run must be a boolean")
			return
		}
		dryRun = parsed
	}

	var userID, idempotencyKey string
	if !dryRun {
		if !requireLandingAuthorization(w, r) || !requireLandingRequestID(w, r) {
			return
		}
		var ok bool
		if userID, ok = requireLandingUser(w, r); !ok {
			return
		}
		if idempotencyKey, ok = requireLandingIdempotencyKey(w, r); !ok {
			return
		}
	}

	var req landinghttp.GeneratePackRequest
	if !s.decodeJSON(w, r, &req, writeLandingError) {
		return
	}
	resp, err := s.landing.Handler.GeneratePackHandler(r.Context(), userID, r.PathValue("pack_id"), idempotencyKey, dryRun, req)
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if resp.DryRun || resp.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleLandingPreviewPacks(w http.ResponseWriter, r *http.Request) {
	var req landinghttp.PreviewPacksRequest
	if !s.decodeJSON(w, r, &req, writeLandingError) {
		return
	}
	resp, err := s.landing.Handler.PreviewPacksHandler(r.Context(), req)
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingGetPage(w http.ResponseWriter, r *http.Request) {
	resp, err := s.landing.Handler.GetPageHandler(r.Context(), r.PathValue("page_id"))
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLandingListPages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if limitRaw := query.Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeLandingError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}
	resp, err := s.landing.Handler.ListPagesHandler(r.Context(), query.Get("pack_id"), limit)
	if err != nil {
		writeLandingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
