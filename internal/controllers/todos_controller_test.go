package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirfav/internal/models"
	"dirfav/internal/services"
)

func newTodosFixture() (*TodosController, services.OwnerTodosServiceInterface) {
	todos := services.NewOwnerTodosService()
	return NewTodosController(&mockLogger{}, todos), todos
}

func todoRequest(method, userID, todoID string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/users/"+userID+"/todos", strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, "/users/"+userID+"/todos/"+todoID, nil)
	}
	req.SetPathValue("userId", userID)
	if todoID != "" {
		req.SetPathValue("todoId", todoID)
	}
	return req
}

func TestAddTodo(t *testing.T) {
	tc, todos := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.AddTodo(rr, todoRequest(http.MethodPost, "0", "", `{"title":"rotate the backups"}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	var todo models.Todo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &todo))
	assert.Equal(t, "rotate the backups", todo.Title)
	assert.False(t, todo.Completed)

	assert.Equal(t, todo.ID, todos.List()[0].ID)
}

func TestAddTodo_EmptyTitle(t *testing.T) {
	tc, todos := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.AddTodo(rr, todoRequest(http.MethodPost, "0", "", `{"title":"  "}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, todos.List(), len(services.OwnerTodos()))
}

func TestAddTodo_InvalidJSON(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.AddTodo(rr, todoRequest(http.MethodPost, "0", "", `{`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddTodo_RemoteUserRejected(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.AddTodo(rr, todoRequest(http.MethodPost, "2", "", `{"title":"nope"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddTodo_MalformedUserID(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.AddTodo(rr, todoRequest(http.MethodPost, "x", "", `{"title":"nope"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggleTodo(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.ToggleTodo(rr, todoRequest(http.MethodPost, "0", "207", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	var todo models.Todo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &todo))
	assert.True(t, todo.Completed)
}

func TestToggleTodo_Unknown(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.ToggleTodo(rr, todoRequest(http.MethodPost, "0", "9999", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteTodo(t *testing.T) {
	tc, todos := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.DeleteTodo(rr, todoRequest(http.MethodDelete, "0", "201", ""))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Len(t, todos.List(), len(services.OwnerTodos())-1)
}

func TestDeleteTodo_Unknown(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.DeleteTodo(rr, todoRequest(http.MethodDelete, "0", "9999", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteTodo_RemoteUserRejected(t *testing.T) {
	tc, _ := newTodosFixture()

	rr := httptest.NewRecorder()
	tc.DeleteTodo(rr, todoRequest(http.MethodDelete, "5", "81", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
