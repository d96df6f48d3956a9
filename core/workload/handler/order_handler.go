package handler

import (
	"net/http"

	"workloadparser/models"
)

const placeOrderCommand = "place order"

type OrderPlace struct {
	ProductID int
	UserID    int
	Quantity  int
}

func (i OrderPlace) Entity() models.Entity { return models.EntityOrder }
func (i OrderPlace) Action() models.Action { return models.ActionPlace }

func (i OrderPlace) Request(baseURL string) models.Request {
	return models.Request{
		Method: http.MethodPost,
		URL:    baseURL + "/order",
		Body: models.Payload{
			"command":    placeOrderCommand,
			"product_id": i.ProductID,
			"user_id":    i.UserID,
			"quantity":   i.Quantity,
		},
	}
}

type OrderHandler struct {
	BaseHandler
}

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

func (h *OrderHandler) CanHandle(entity models.Entity) bool {
	return entity == models.EntityOrder
}

// ORDER place <product_id> <user_id> <quantity>
func (h *OrderHandler) Handle(action models.Action, args []string) (Instruction, error) {
	if action != models.ActionPlace {
		return nil, ErrUnknownAction
	}

	var (
		o   OrderPlace
		err error
	)
	if o.ProductID, err = h.Int(args, 0, "product_id"); err != nil {
		return nil, err
	}
	if o.UserID, err = h.Int(args, 1, "user_id"); err != nil {
		return nil, err
	}
	if o.Quantity, err = h.Int(args, 2, "quantity"); err != nil {
		return nil, err
	}
	return o, nil
}
