package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
	"github.com/kjramos5310/inventario-console/pkg/logger"
)

// nativeIDFields maps each collection's route segment to the id field name the
// real backend exposes. The inconsistency is deliberate: clients depend on
// re-keying id_proveedor, id_pedido, and id_inventario.
var nativeIDFields = map[string]string{
	"categoria":             "id_categoria",
	"empresa":               "id_empresa",
	"inventario":            "id_inventario",
	"movimiento-inventario": "id",
	"pedido":                "id_pedido",
	"producto":              "id",
	"proveedor":             "id_proveedor",
	"reporte":               "id",
	"rol":                   "id",
	"usuario":               "id",
	"detalle_pedido":        "id",
}

// Server is an in-memory stand-in for the inventario backend, for development
// and tests.
type Server struct {
	collections map[string]*collection
	logg        *logger.Logger
	registry    *prometheus.Registry
	metrics     *httpMetrics
}

func NewServer(logg *logger.Logger) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		collections: map[string]*collection{},
		logg:        logg,
		registry:    registry,
		metrics:     newHTTPMetrics(registry),
	}
	for name, idField := range nativeIDFields {
		s.collections[name] = newCollection(idField)
	}
	return s
}

// Seed inserts records into a collection, assigning ids in order.
func (s *Server) Seed(name string, records ...map[string]any) {
	col, ok := s.collections[name]
	if !ok {
		return
	}
	for _, record := range records {
		col.create(record)
	}
}

// Router builds the REST surface: list/get/create/update/delete per
// collection, plus /metrics.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID(s.logg))
	r.Use(requestLogger(s.logg))

	for name := range s.collections {
		col := s.collections[name]
		r.Route("/"+name, func(r chi.Router) {
			r.Use(s.metrics.middleware(name))
			r.Get("/", s.handleList(col))
			r.Post("/", s.handleCreate(col))
			r.Get("/{id}", s.handleGet(name, col))
			r.Put("/{id}", s.handleUpdate(name, col))
			r.Delete("/{id}", s.handleDelete(name, col))
		})
	}

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleList(col *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, col.list())
	}
}

func (s *Server) handleGet(name string, col *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		record, found := col.get(id)
		if !found {
			writeNotFound(w, name, id)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func (s *Server) handleCreate(col *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeBody(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusCreated, col.create(input))
	}
}

func (s *Server) handleUpdate(name string, col *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		changes, ok := decodeBody(w, r)
		if !ok {
			return
		}
		record, found := col.update(id, changes)
		if !found {
			writeNotFound(w, name, id)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// handleDelete answers 200 with an empty body, like the backend's no-content
// deletes the client contract tolerates.
func (s *Server) handleDelete(name string, col *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if !col.remove(id) {
			writeNotFound(w, name, id)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, pkgerrors.CodeValidation, fmt.Sprintf("id invalido: %s", raw))
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, pkgerrors.CodeValidation, "cuerpo json invalido")
		return nil, false
	}
	return input, true
}

func writeNotFound(w http.ResponseWriter, name string, id int64) {
	writeError(w, pkgerrors.CodeNotFound, fmt.Sprintf("%s %d no existe", name, id))
}

// writeError maps the error code to its HTTP status and answers with a plain
// text body, matching the backend this server stands in for.
func writeError(w http.ResponseWriter, code pkgerrors.Code, message string) {
	http.Error(w, message, pkgerrors.MetadataFor(code).HTTPStatus)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
