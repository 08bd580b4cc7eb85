package main

import (
	"net/http"
)

const maxProbeCollections = 10

type RootResponse struct {
	Message string `json:"message"`
}

type StoreProbeResponse struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
}

// rootHandler godoc
//
//	@Summary		Liveness
//	@Description	Reports that the API process is running
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func (app *application) rootHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, RootResponse{Message: "Restaurant API is running"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// storeProbeHandler godoc
//
//	@Summary		Database connectivity probe
//	@Description	Reports database state and up to ten collection names. Always responds 200.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	StoreProbeResponse
//	@Router			/test [get]
func (app *application) storeProbeHandler(w http.ResponseWriter, r *http.Request) {
	response := StoreProbeResponse{
		Backend:     "✅ Running",
		Database:    "❌ Not Available",
		Collections: []string{},
	}

	if app.store == nil {
		response.Database = "❌ Not Configured"
	} else if names, err := app.store.ListCollectionNames(r.Context(), maxProbeCollections); err != nil {
		app.logger.Warnw("database probe failed", "error", err)
		response.Database = "❌ Error: " + truncate(err.Error(), 80)
	} else {
		response.Database = "✅ Connected"
		response.Collections = names
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
