package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpmiddleware "github.com/wolfeidau/records/internal/http"
	"github.com/wolfeidau/records/internal/store"
	"github.com/wolfeidau/records/internal/telemetry"
	"github.com/wolfeidau/records/internal/validation"
)

// The handlers below are shared by every record type; each route binds them
// to one store's methods.

func handleCreate[C, R any](s *Server, entity, schemaName string, create func(context.Context, C) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in C
		if !s.decodeBody(w, r, entity, schemaName, &in) {
			return
		}

		rec, err := create(r.Context(), in)
		if err != nil {
			s.writeStoreError(w, r, entity, err)
			return
		}

		telemetry.Inc(r.Context(), s.metrics.RecordsCreatedTotal, entity)
		httpmiddleware.WriteJSON(w, http.StatusCreated, rec)
	}
}

func handleGet[R any](s *Server, entity string, get func(context.Context, uuid.UUID) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r, entity)
		if !ok {
			return
		}

		rec, err := get(r.Context(), id)
		if err != nil {
			s.writeStoreError(w, r, entity, err)
			return
		}

		httpmiddleware.WriteJSON(w, http.StatusOK, rec)
	}
}

func handleList[F, R any](s *Server, entity string, list func(context.Context, F) ([]R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter F
		if err := s.filters.Decode(&filter, r.URL.Query()); err != nil {
			s.writeValidationError(w, r, entity, &validation.Error{Errors: []validation.FieldError{
				{Code: validation.CodeType, Message: err.Error()},
			}})
			return
		}

		recs, err := list(r.Context(), filter)
		if err != nil {
			s.writeStoreError(w, r, entity, err)
			return
		}
		if recs == nil {
			recs = []R{}
		}

		s.metrics.RecordsListedTotal.Add(r.Context(), int64(len(recs)), telemetry.Entity(entity))
		httpmiddleware.WriteJSON(w, http.StatusOK, recs)
	}
}

func handleUpdate[U, R any](s *Server, entity, schemaName string, update func(context.Context, uuid.UUID, U) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r, entity)
		if !ok {
			return
		}

		var in U
		if !s.decodeBody(w, r, entity, schemaName, &in) {
			return
		}

		rec, err := update(r.Context(), id, in)
		if err != nil {
			s.writeStoreError(w, r, entity, err)
			return
		}

		telemetry.Inc(r.Context(), s.metrics.RecordsUpdatedTotal, entity)
		httpmiddleware.WriteJSON(w, http.StatusOK, rec)
	}
}

// decodeBody validates the request body against schemaName and decodes it
// into dst. It writes the error response and returns false on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, entity, schemaName string, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpmiddleware.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		httpmiddleware.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}

	if err := s.validator.Decode(schemaName, body, dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			s.writeValidationError(w, r, entity, verr)
			return false
		}
		s.writeStoreError(w, r, entity, err)
		return false
	}

	return true
}

// pathID parses the {id} path value. It writes the error response and
// returns false when the value is not a UUID.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeValidationError(w, r, entity, &validation.Error{Errors: []validation.FieldError{
			{Field: "id", Code: validation.CodeFormat, Message: err.Error()},
		}})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) writeValidationError(w http.ResponseWriter, r *http.Request, entity string, verr *validation.Error) {
	telemetry.Inc(r.Context(), s.metrics.ValidationErrorsTotal, entity)
	zerolog.Ctx(r.Context()).Debug().Err(verr).Str("entity", entity).Msg("Rejected request")
	httpmiddleware.WriteValidationError(w, verr)
}

// writeStoreError maps store sentinel errors onto HTTP status codes.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		telemetry.Inc(ctx, s.metrics.RecordConflictsTotal, entity)
		zerolog.Ctx(ctx).Debug().Err(err).Str("entity", entity).Msg("Duplicate ID on create")
		httpmiddleware.WriteError(w, http.StatusBadRequest, sentence(err.Error()))
	case errors.Is(err, store.ErrNotFound):
		telemetry.Inc(ctx, s.metrics.RecordsNotFoundTotal, entity)
		httpmiddleware.WriteError(w, http.StatusNotFound, sentence(err.Error()))
	default:
		zerolog.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Store operation failed")
		httpmiddleware.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// sentence upper-cases the first letter of msg.
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
