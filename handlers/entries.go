package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"traindiary/i18n"
	"traindiary/models"
)

var entryErrorKeys = errorKeys{
	notFound:   "EntryNotFound",
	validation: "RequiredDiaryFields",
	internal:   "ErrorFetchingEntries",
}

type entryInput struct {
	OwnerID    int    `json:"owner_id"`
	Weekdays   string `json:"weekdays"`
	Date       string `json:"date"`
	Workout    string `json:"workout"`
	ReadToday  *bool  `json:"read_today"`
	TookPhoto  *bool  `json:"took_photo"`
	Diet       *bool  `json:"diet"`
	Reminder   string `json:"reminder"`
	PhotoRef   string `json:"photo_ref"`
	ReadingRef string `json:"reading_ref"`
	Notes      string `json:"notes"`
}

var dateLayouts = []string{
	time.RFC3339,          // 2024-01-01T00:00:00Z
	"2006-01-02T15:04:05", // 2024-01-01T00:00:00
	"2006-01-02",          // 2024-01-01
}

func parseEntryDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// missingFlags lists the boolean flags absent from the payload. The
// flags carry no store default: an omitted flag is the caller's error.
func (in *entryInput) missingFlags() []string {
	var missing []string
	if in.ReadToday == nil {
		missing = append(missing, "read_today")
	}
	if in.TookPhoto == nil {
		missing = append(missing, "took_photo")
	}
	if in.Diet == nil {
		missing = append(missing, "diet")
	}
	return missing
}

func (in *entryInput) toEntry() models.DiaryEntry {
	e := models.DiaryEntry{
		OwnerID:    in.OwnerID,
		Weekdays:   in.Weekdays,
		Date:       parseEntryDate(in.Date),
		Workout:    in.Workout,
		Reminder:   in.Reminder,
		PhotoRef:   in.PhotoRef,
		ReadingRef: in.ReadingRef,
		Notes:      in.Notes,
	}
	if in.ReadToday != nil {
		e.ReadToday = *in.ReadToday
	}
	if in.TookPhoto != nil {
		e.TookPhoto = *in.TookPhoto
	}
	if in.Diet != nil {
		e.Diet = *in.Diet
	}
	return e
}

func (a *API) ListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := a.Entries.All()
	if err != nil {
		sendStoreError(w, r, err, entryErrorKeys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: entries})
}

func (a *API) GetEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "InvalidID")
	if !ok {
		return
	}

	entry, err := a.Entries.Find(id)
	if err != nil {
		sendStoreError(w, r, err, entryErrorKeys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: entry})
}

func (a *API) EntriesByOwnerHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "ownerID", "InvalidOwnerID")
	if !ok {
		return
	}

	entries, err := a.Entries.ByOwner(ownerID)
	if err != nil {
		sendStoreError(w, r, err, entryErrorKeys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: entries})
}

func (a *API) CreateEntryHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)

	var input entryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	if missing := input.missingFlags(); len(missing) > 0 {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: i18n.T(lang, "MissingBooleanFlags"),
			Data:    map[string]any{"missing": missing},
		})
		return
	}

	entry, err := a.Entries.Create(input.toEntry())
	if err != nil {
		keys := entryErrorKeys
		keys.internal = "ErrorCreatingEntry"
		sendStoreError(w, r, err, keys)
		return
	}
	sendJSONResponse(w, http.StatusCreated, APIResponse{Status: "success", Data: entry})
}

func (a *API) UpdateEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "InvalidID")
	if !ok {
		return
	}

	lang := i18n.DetectLanguage(r)
	var input entryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	// Replace semantics: the payload overwrites the whole document,
	// omitted flags included (they fall back to false).
	entry, err := a.Entries.Update(id, input.toEntry())
	if err != nil {
		keys := entryErrorKeys
		keys.internal = "ErrorUpdatingEntry"
		sendStoreError(w, r, err, keys)
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: entry})
}

func (a *API) DeleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "InvalidID")
	if !ok {
		return
	}

	if err := a.Entries.Delete(id); err != nil {
		keys := entryErrorKeys
		keys.internal = "ErrorDeletingEntry"
		sendStoreError(w, r, err, keys)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
