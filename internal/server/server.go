package server

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/wolfeidau/records/internal/health"
	httpmiddleware "github.com/wolfeidau/records/internal/http"
	"github.com/wolfeidau/records/internal/store"
	"github.com/wolfeidau/records/internal/telemetry"
	"github.com/wolfeidau/records/internal/validation"
)

// maxBodyBytes caps request bodies accepted by create and update handlers.
const maxBodyBytes = 1 << 20 // 1MiB

const welcomeMessage = "Welcome to the Person/Address API. See /health for service status."

// Entity names used in metrics and log fields.
const (
	entityAddress      = "address"
	entityPerson       = "person"
	entityOrganization = "organization"
	entityProject      = "project"
)

// Server exposes the record stores over HTTP.
type Server struct {
	stores    store.Stores
	validator *validation.Validator
	health    *health.Reporter
	filters   *schema.Decoder
	metrics   *telemetry.Metrics
}

// NewServer creates a new server backed by the given stores.
func NewServer(stores store.Stores, validator *validation.Validator, reporter *health.Reporter) *Server {
	filters := schema.NewDecoder()
	filters.IgnoreUnknownKeys(true)

	return &Server{
		stores:    stores,
		validator: validator,
		health:    reporter,
		filters:   filters,
		metrics:   telemetry.GetMetrics(),
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /health/{path_echo}", s.handleHealth)

	addresses := s.stores.Addresses
	mux.HandleFunc("POST /addresses", handleCreate(s, entityAddress, validation.AddressCreate, addresses.Create))
	mux.HandleFunc("GET /addresses", handleList(s, entityAddress, addresses.List))
	mux.HandleFunc("GET /addresses/{id}", handleGet(s, entityAddress, addresses.Get))
	mux.HandleFunc("PATCH /addresses/{id}", handleUpdate(s, entityAddress, validation.AddressUpdate, addresses.Update))

	persons := s.stores.Persons
	mux.HandleFunc("POST /persons", handleCreate(s, entityPerson, validation.PersonCreate, persons.Create))
	mux.HandleFunc("GET /persons", handleList(s, entityPerson, persons.List))
	mux.HandleFunc("GET /persons/{id}", handleGet(s, entityPerson, persons.Get))
	mux.HandleFunc("PATCH /persons/{id}", handleUpdate(s, entityPerson, validation.PersonUpdate, persons.Update))

	organizations := s.stores.Organizations
	mux.HandleFunc("POST /organizations", handleCreate(s, entityOrganization, validation.OrganizationCreate, organizations.Create))
	mux.HandleFunc("GET /organizations", handleList(s, entityOrganization, organizations.List))
	mux.HandleFunc("GET /organizations/{id}", handleGet(s, entityOrganization, organizations.Get))
	mux.HandleFunc("PATCH /organizations/{id}", handleUpdate(s, entityOrganization, validation.OrganizationUpdate, organizations.Update))

	projects := s.stores.Projects
	mux.HandleFunc("POST /projects", handleCreate(s, entityProject, validation.ProjectCreate, projects.Create))
	mux.HandleFunc("GET /projects", handleList(s, entityProject, projects.List))
	mux.HandleFunc("GET /projects/{id}", handleGet(s, entityProject, projects.Get))
	mux.HandleFunc("PATCH /projects/{id}", handleUpdate(s, entityProject, validation.ProjectUpdate, projects.Update))

	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	httpmiddleware.WriteJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var echo, pathEcho *string

	if q := r.URL.Query(); q.Has("echo") {
		v := q.Get("echo")
		echo = &v
	}
	if v := r.PathValue("path_echo"); v != "" {
		pathEcho = &v
	}

	httpmiddleware.WriteJSON(w, http.StatusOK, s.health.Report(r.Context(), echo, pathEcho))
}
