package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"traindiary/i18n"
	"traindiary/store"

	"github.com/go-chi/chi/v5"
)

var userErrorKeys = errorKeys{
	notFound:   "UserNotFound",
	validation: "AllFieldsRequired",
	internal:   "ErrorFetchingUser",
}

// pathID parses the numeric {id} segment; a non-numeric id is the
// caller's fault and reports 400.
func pathID(w http.ResponseWriter, r *http.Request, param, messageKey string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		lang := i18n.DetectLanguage(r)
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, messageKey)})
		return 0, false
	}
	return id, true
}

func (a *API) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := a.Users.All()
	if err != nil {
		sendStoreError(w, r, err, userErrorKeys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: users})
}

func (a *API) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "InvalidID")
	if !ok {
		return
	}

	user, err := a.Users.Find(id)
	if err != nil {
		sendStoreError(w, r, err, userErrorKeys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: user})
}

type userInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)

	ip := getClientIP(r)
	if !createLimiter.Allow(ip) {
		sendJSONResponse(w, http.StatusTooManyRequests, APIResponse{Status: "error", Message: i18n.T(lang, "TooManyAttempts")})
		return
	}

	var input userInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	user, err := a.Users.Create(input.Username, input.Email, input.Password)
	if err != nil {
		keys := userErrorKeys
		keys.internal = "ErrorCreatingUser"
		sendStoreError(w, r, err, keys)
		return
	}

	// Count successful creations per IP to bound account churn
	createLimiter.Record(ip)

	sendJSONResponse(w, http.StatusCreated, APIResponse{Status: "success", Data: user})
}

func (a *API) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "InvalidID")
	if !ok {
		return
	}

	lang := i18n.DetectLanguage(r)
	var input userInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	user, err := a.Users.Update(id, store.UserUpdate{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		keys := userErrorKeys
		keys.validation = "NoUpdateData"
		keys.internal = "ErrorUpdatingUser"
		sendStoreError(w, r, err, keys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: user})
}

func (a *API) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "InvalidID")
	if !ok {
		return
	}

	if err := a.Users.Delete(id); err != nil {
		keys := userErrorKeys
		keys.internal = "ErrorDeletingUser"
		sendStoreError(w, r, err, keys)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
