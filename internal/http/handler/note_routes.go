package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Andriyshkoy/BurNote/internal/contract"
	"github.com/Andriyshkoy/BurNote/internal/utils/apierror"
)

type NoteService interface {
	CreateNote(req *contract.CreateNoteRequest) (*contract.CreateNoteResponse, apierror.ErrorResponse)
	AccessNote(req *contract.NoteAccessRequest) (*contract.NoteResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

// CreateNote handles POST /api/v1/notes/create.
func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := n.NoteService.CreateNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

// AccessNote handles POST /api/v1/notes. A successful response may be
// the only time the note's content is ever served.
func (n *DefaultNoteRoute) AccessNote(c echo.Context) error {
	var req contract.NoteAccessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.AccessNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}
