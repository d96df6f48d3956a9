package handler

import (
	"net/http"
	"net/url"

	"workloadparser/models"
)

type UserGet struct {
	ID string
}

func (i UserGet) Entity() models.Entity { return models.EntityUser }
func (i UserGet) Action() models.Action { return models.ActionGet }

func (i UserGet) Request(baseURL string) models.Request {
	return models.Request{Method: http.MethodGet, URL: baseURL + "/user/" + url.PathEscape(i.ID)}
}

// UserRecord is the full field set sent by create and delete.
type UserRecord struct {
	ID       int
	Username string
	Email    string
	Password string
}

func (r UserRecord) payload(command models.Action) models.Payload {
	return models.Payload{
		"command":  string(command),
		"id":       r.ID,
		"username": r.Username,
		"email":    r.Email,
		"password": r.Password,
	}
}

type UserCreate struct {
	UserRecord
}

func (i UserCreate) Entity() models.Entity { return models.EntityUser }
func (i UserCreate) Action() models.Action { return models.ActionCreate }

func (i UserCreate) Request(baseURL string) models.Request {
	return models.Request{Method: http.MethodPost, URL: baseURL + "/user", Body: i.payload(models.ActionCreate)}
}

type UserDelete struct {
	UserRecord
}

func (i UserDelete) Entity() models.Entity { return models.EntityUser }
func (i UserDelete) Action() models.Action { return models.ActionDelete }

func (i UserDelete) Request(baseURL string) models.Request {
	return models.Request{Method: http.MethodPost, URL: baseURL + "/user", Body: i.payload(models.ActionDelete)}
}

// UserUpdate carries key:value tokens as strings, applied in order on top of command and id.
type UserUpdate struct {
	ID     int
	Fields [][2]string
}

func (i UserUpdate) Entity() models.Entity { return models.EntityUser }
func (i UserUpdate) Action() models.Action { return models.ActionUpdate }

func (i UserUpdate) Request(baseURL string) models.Request {
	body := models.Payload{
		"command": string(models.ActionUpdate),
		"id":      i.ID,
	}
	for _, kv := range i.Fields {
		body[kv[0]] = kv[1]
	}
	return models.Request{Method: http.MethodPost, URL: baseURL + "/user", Body: body}
}

type UserHandler struct {
	BaseHandler
}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) CanHandle(entity models.Entity) bool {
	return entity == models.EntityUser
}

func (h *UserHandler) Handle(action models.Action, args []string) (Instruction, error) {
	switch action {
	case models.ActionGet:
		id, err := h.Token(args, 0, "id")
		if err != nil {
			return nil, err
		}
		return UserGet{ID: id}, nil

	case models.ActionCreate:
		rec, err := h.record(args)
		if err != nil {
			return nil, err
		}
		return UserCreate{UserRecord: rec}, nil

	case models.ActionDelete:
		rec, err := h.record(args)
		if err != nil {
			return nil, err
		}
		return UserDelete{UserRecord: rec}, nil

	case models.ActionUpdate:
		id, err := h.Int(args, 0, "id")
		if err != nil {
			return nil, err
		}
		return UserUpdate{ID: id, Fields: h.Pairs(args, 1)}, nil
	}

	return nil, ErrUnknownAction
}

// USER create|delete <id> <username> <email> <password>
func (h *UserHandler) record(args []string) (UserRecord, error) {
	var (
		rec UserRecord
		err error
	)
	if rec.ID, err = h.Int(args, 0, "id"); err != nil {
		return rec, err
	}
	if rec.Username, err = h.Token(args, 1, "username"); err != nil {
		return rec, err
	}
	if rec.Email, err = h.Token(args, 2, "email"); err != nil {
		return rec, err
	}
	if rec.Password, err = h.Token(args, 3, "password"); err != nil {
		return rec, err
	}
	return rec, nil
}
