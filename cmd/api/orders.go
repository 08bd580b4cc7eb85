package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/service"
)

type CustomerRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
}

type OrderItemRequest struct {
	MenuItemID string   `json:"menu_item_id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	UnitPrice  *float64 `json:"unit_price" validate:"required,gte=0"`
	Quantity   int      `json:"quantity" validate:"gte=1"`
	Notes      *string  `json:"notes"`
}

// CreateOrderRequest carries no status or totals; both are set by the server.
type CreateOrderRequest struct {
	Customer    CustomerRequest    `json:"customer"`
	Items       []OrderItemRequest `json:"items" validate:"required,dive"`
	TableNumber *string            `json:"table_number"`
	Pickup      bool               `json:"pickup"`
}

func (req CreateOrderRequest) toInput() service.PlaceOrderInput {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			UnitPrice:  *it.UnitPrice,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}

	return service.PlaceOrderInput{
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Items:       items,
		TableNumber: req.TableNumber,
		Pickup:      req.Pickup,
	}
}

type CreateOrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// createOrderHandler godoc
//
//	@Summary		Place order
//	@Description	Prices the order server side and stores it as pending
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		422		{object}	validationEnvelope
//	@Failure		500		{object}	map[string]string
//	@Router			/api/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	order, err := app.orderService.CreateOrder(r.Context(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTotalsOutOfRange):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := CreateOrderResponse{
		ID:    order.ID.Hex(),
		Total: order.Total,
	}

	if err := app.jsonResponse(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Returns the most recent orders
//	@Tags			orders
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of orders"	default(50)
//	@Success		200		{array}		domain.Order
//	@Failure		422		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultOrderListLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			app.unprocessableEntityResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	orders, err := app.orderService.ListOrders(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}
