package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/parser"
	"github.com/Beka01247/restaurant-api/internal/service"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

func (req CreateMenuItemRequest) toDomain() domain.MenuItem {
	item := domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	return item
}

type ImportMenuRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
	Range         string `json:"range"`
}

type SeedMenuResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message,omitempty"`
}

// listMenuHandler godoc
//
//	@Summary		List menu
//	@Description	Returns every menu item in store order
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		domain.MenuItem
//	@Failure		500	{object}	map[string]string
//	@Router			/api/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.catalogService.ListMenu(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item"
//	@Success		201		{object}	map[string]string
//	@Failure		422		{object}	validationEnvelope
//	@Failure		500		{object}	map[string]string
//	@Router			/api/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	item := req.toDomain()
	id, err := app.catalogService.CreateMenuItem(r.Context(), &item)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.Hex()}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// seedMenuHandler godoc
//
//	@Summary		Seed sample menu
//	@Description	Inserts five sample dishes when the menu is empty
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	SeedMenuResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/api/menu/seed [post]
func (app *application) seedMenuHandler(w http.ResponseWriter, r *http.Request) {
	inserted, err := app.catalogService.SeedMenu(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := SeedMenuResponse{Inserted: inserted}
	if inserted == 0 {
		response.Message = "Menu already populated"
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// importMenuHandler godoc
//
//	@Summary		Import menu from Google Sheets
//	@Description	Rows are read as name, description, price, category, image_url, is_available
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImportMenuRequest	true	"Spreadsheet"
//	@Success		201		{object}	service.ImportResult
//	@Failure		422		{object}	validationEnvelope
//	@Failure		500		{object}	map[string]string
//	@Failure		502		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/api/menu/import [post]
func (app *application) importMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportMenuRequest
	if err := readJson(w, r, &req); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	if req.Range == "" {
		req.Range = parser.DefaultRange
	}

	result, err := app.catalogService.ImportMenu(r.Context(), req.SpreadsheetID, req.Range)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImportNotConfigured):
			app.serviceUnavailableResponse(w, r, err)
		case errors.Is(err, service.ErrMenuSource):
			app.badGatewayResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, result); err != nil {
		app.internalServerError(w, r, err)
	}
}
