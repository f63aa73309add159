package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"traindiary/config"
	"traindiary/i18n"
	"traindiary/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// APIResponse is the JSON envelope for every endpoint. Data must not
// carry omitempty: an empty entry list is a meaningful payload,
// distinct from no payload at all.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// API bundles the store handles. Stores are constructed once at process
// start and passed in by reference; handlers never open connections.
type API struct {
	Users   *store.UserStore
	Entries *store.EntryStore
}

func New(users *store.UserStore, entries *store.EntryStore) *API {
	return &API{Users: users, Entries: entries}
}

// Router assembles the full middleware chain and route table.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(SecureHeaders)

	origins := config.AppConfig.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", a.RootHandler)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", a.ListUsersHandler)
		r.Post("/", a.CreateUserHandler)
		r.Get("/{id}", a.GetUserHandler)
		r.Put("/{id}", a.UpdateUserHandler)
		r.Delete("/{id}", a.DeleteUserHandler)
	})

	r.Route("/diary", func(r chi.Router) {
		r.Get("/", a.ListEntriesHandler)
		r.Post("/", a.CreateEntryHandler)
		r.Get("/user/{ownerID}", a.EntriesByOwnerHandler)
		r.Get("/{id}", a.GetEntryHandler)
		r.Put("/{id}", a.UpdateEntryHandler)
		r.Delete("/{id}", a.DeleteEntryHandler)
	})

	return r
}

func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Message: i18n.T(lang, "ServerRunning")})
}

func sendJSONResponse(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// errorKeys names the i18n messages a handler wants for each error
// kind; zero-value keys fall back to generic ones.
type errorKeys struct {
	notFound   string
	validation string
	internal   string
}

// sendStoreError maps the store taxonomy onto HTTP statuses:
// ValidationError 400, not-found kinds 404, everything else 500.
func sendStoreError(w http.ResponseWriter, r *http.Request, err error, keys errorKeys) {
	lang := i18n.DetectLanguage(r)

	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: i18n.T(lang, keys.validation),
			Data:    map[string]any{"missing": verr.Fields},
		})
	case errors.Is(err, store.ErrOwnerNotFound):
		sendJSONResponse(w, http.StatusNotFound, APIResponse{Status: "error", Message: i18n.T(lang, "UserNotFound")})
	case errors.Is(err, store.ErrNotFound):
		sendJSONResponse(w, http.StatusNotFound, APIResponse{Status: "error", Message: i18n.T(lang, keys.notFound)})
	default:
		log.Printf("store error: %v", err)
		sendJSONResponse(w, http.StatusInternalServerError, APIResponse{Status: "error", Message: i18n.T(lang, keys.internal)})
	}
}
