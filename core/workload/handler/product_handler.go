package handler

import (
	"net/http"
	"net/url"

	"workloadparser/models"
)

// DefaultDescription is used when a create line has no description token.
const DefaultDescription = "N/A"

type ProductInfo struct {
	ID string
}

func (i ProductInfo) Entity() models.Entity { return models.EntityProduct }
func (i ProductInfo) Action() models.Action { return models.ActionInfo }

func (i ProductInfo) Request(baseURL string) models.Request {
	return models.Request{Method: http.MethodGet, URL: baseURL + "/product/" + url.PathEscape(i.ID)}
}

type ProductCreate struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Quantity    int
}

func (i ProductCreate) Entity() models.Entity { return models.EntityProduct }
func (i ProductCreate) Action() models.Action { return models.ActionCreate }

func (i ProductCreate) Request(baseURL string) models.Request {
	return models.Request{
		Method: http.MethodPost,
		URL:    baseURL + "/product",
		Body: models.Payload{
			"command":     string(models.ActionCreate),
			"id":          i.ID,
			"name":        i.Name,
			"description": i.Description,
			"price":       i.Price,
			"quantity":    i.Quantity,
		},
	}
}

// Field is a coerced key:value token.
type Field struct {
	Key   string
	Value interface{}
}

type ProductUpdate struct {
	ID     int
	Fields []Field
}

func (i ProductUpdate) Entity() models.Entity { return models.EntityProduct }
func (i ProductUpdate) Action() models.Action { return models.ActionUpdate }

func (i ProductUpdate) Request(baseURL string) models.Request {
	body := models.Payload{
		"command": string(models.ActionUpdate),
		"id":      i.ID,
	}
	for _, f := range i.Fields {
		body[f.Key] = f.Value
	}
	return models.Request{Method: http.MethodPost, URL: baseURL + "/product", Body: body}
}

type ProductDelete struct {
	ID       int
	Name     string
	Price    float64
	Quantity int
}

func (i ProductDelete) Entity() models.Entity { return models.EntityProduct }
func (i ProductDelete) Action() models.Action { return models.ActionDelete }

func (i ProductDelete) Request(baseURL string) models.Request {
	return models.Request{
		Method: http.MethodPost,
		URL:    baseURL + "/product",
		Body: models.Payload{
			"command":  string(models.ActionDelete),
			"id":       i.ID,
			"name":     i.Name,
			"price":    i.Price,
			"quantity": i.Quantity,
		},
	}
}

type ProductHandler struct {
	BaseHandler
}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

func (h *ProductHandler) CanHandle(entity models.Entity) bool {
	return entity == models.EntityProduct
}

func (h *ProductHandler) Handle(action models.Action, args []string) (Instruction, error) {
	switch action {
	case models.ActionInfo:
		id, err := h.Token(args, 0, "id")
		if err != nil {
			return nil, err
		}
		return ProductInfo{ID: id}, nil
	case models.ActionCreate:
		return h.create(args)
	case models.ActionUpdate:
		return h.update(args)
	case models.ActionDelete:
		return h.delete(args)
	}
	return nil, ErrUnknownAction
}

// PRODUCT create <id> <name> [description] <price> <quantity>
func (h *ProductHandler) create(args []string) (Instruction, error) {
	var (
		p   = ProductCreate{Description: DefaultDescription}
		err error
	)
	if p.ID, err = h.Int(args, 0, "id"); err != nil {
		return nil, err
	}
	if p.Name, err = h.Token(args, 1, "name"); err != nil {
		return nil, err
	}

	next := 2
	if len(args) >= 5 {
		p.Description = args[2]
		next = 3
	}
	if p.Price, err = h.Float(args, next, "price"); err != nil {
		return nil, err
	}
	if p.Quantity, err = h.Int(args, next+1, "quantity"); err != nil {
		return nil, err
	}
	return p, nil
}

func (h *ProductHandler) update(args []string) (Instruction, error) {
	id, err := h.Int(args, 0, "id")
	if err != nil {
		return nil, err
	}

	p := ProductUpdate{ID: id}
	for _, kv := range h.Pairs(args, 1) {
		f := Field{Key: kv[0], Value: kv[1]}
		switch kv[0] {
		case "price":
			if f.Value, err = parseFloat("price", kv[1]); err != nil {
				return nil, err
			}
		case "quantity":
			if f.Value, err = parseInt("quantity", kv[1]); err != nil {
				return nil, err
			}
		}
		p.Fields = append(p.Fields, f)
	}
	return p, nil
}

// PRODUCT delete <id> <name> <price> <quantity>
func (h *ProductHandler) delete(args []string) (Instruction, error) {
	var (
		p   ProductDelete
		err error
	)
	if p.ID, err = h.Int(args, 0, "id"); err != nil {
		return nil, err
	}
	if p.Name, err = h.Token(args, 1, "name"); err != nil {
		return nil, err
	}
	if p.Price, err = h.Float(args, 2, "price"); err != nil {
		return nil, err
	}
	if p.Quantity, err = h.Int(args, 3, "quantity"); err != nil {
		return nil, err
	}
	return p, nil
}
