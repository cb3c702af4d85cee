package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andriyshkoy/BurNote/internal/contract"
	"github.com/Andriyshkoy/BurNote/internal/utils/apierror"
)

type fakeNoteService struct {
	createResp *contract.CreateNoteResponse
	createErr  apierror.ErrorResponse

	accessResp *contract.NoteResponse
	accessErr  apierror.ErrorResponse

	lastCreate *contract.CreateNoteRequest
	lastAccess *contract.NoteAccessRequest
}

func (f *fakeNoteService) CreateNote(req *contract.CreateNoteRequest) (*contract.CreateNoteResponse, apierror.ErrorResponse) {
	f.lastCreate = req
	return f.createResp, f.createErr
}

func (f *fakeNoteService) AccessNote(req *contract.NoteAccessRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	f.lastAccess = req
	return f.accessResp, f.accessErr
}

func newTestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateNote_Created(t *testing.T) {
	svc := &fakeNoteService{
		createResp: &contract.CreateNoteResponse{
			Key:  "abc123de",
			Link: "https://burnote.test/abc123de",
		},
	}
	route := NewNoteDefault(svc)

	c, rec := newTestContext(`{"text":"hello","burn_after_reading":true}`)
	require.NoError(t, route.CreateNote(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"key":"abc123de","link":"https://burnote.test/abc123de"}`,
		rec.Body.String())

	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, "hello", svc.lastCreate.Text)
	assert.True(t, svc.lastCreate.BurnAfterReading)
}

func TestCreateNote_MalformedJSON(t *testing.T) {
	route := NewNoteDefault(&fakeNoteService{})

	c, rec := newTestContext(`{"text":`)
	require.NoError(t, route.CreateNote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateNote_ValidationErrorsPassThrough(t *testing.T) {
	serr := apierror.NewStructured(http.StatusBadRequest)
	serr.Add("text", "This field is required")
	route := NewNoteDefault(&fakeNoteService{createErr: serr})

	c, rec := newTestContext(`{}`)
	require.NoError(t, route.CreateNote(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":{"text":["This field is required"]}}`, rec.Body.String())
}

func TestAccessNote_OK(t *testing.T) {
	svc := &fakeNoteService{
		accessResp: &contract.NoteResponse{
			Title:     "greeting",
			Text:      "hello",
			Timestamp: "2026-01-02T15:04:05Z",
		},
	}
	route := NewNoteDefault(svc)

	c, rec := newTestContext(`{"key":"abc123de","password":"pw"}`)
	require.NoError(t, route.AccessNote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastAccess)
	assert.Equal(t, "abc123de", svc.lastAccess.Key)
	assert.Equal(t, "pw", svc.lastAccess.Password)
}

func TestAccessNote_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  apierror.ErrorResponse
		code int
	}{
		{"not found", apierror.NoteNotFoundError, http.StatusNotFound},
		{"expired", apierror.NoteExpiredError, http.StatusGone},
		{"invalid password", apierror.InvalidPasswordError, http.StatusUnauthorized},
		{"internal", apierror.InternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := NewNoteDefault(&fakeNoteService{accessErr: tt.err})
			c, rec := newTestContext(`{"key":"abc123de"}`)
			require.NoError(t, route.AccessNote(c))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
