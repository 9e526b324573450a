package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"dirfav/internal/providers"
	"dirfav/internal/services"
)

// TodosController mutates the owner profile's in-memory todo list.
// Remote users' todos are read-only; any other user id is rejected.
type TodosController struct {
	logger providers.Logger
	todos  services.OwnerTodosServiceInterface
}

func NewTodosController(logger providers.Logger, todos services.OwnerTodosServiceInterface) *TodosController {
	return &TodosController{logger: logger, todos: todos}
}

func (tc *TodosController) ownerOnly(w http.ResponseWriter, r *http.Request) bool {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return false
	}
	if userID != services.OwnerUserID {
		http.Error(w, "Not Found", http.StatusNotFound)
		return false
	}
	return true
}

type addTodoRequest struct {
	Title string `json:"title"`
}

func (tc *TodosController) AddTodo(w http.ResponseWriter, r *http.Request) {
	if !tc.ownerOnly(w, r) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var body addTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	todo, err := tc.todos.Add(body.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (tc *TodosController) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	if !tc.ownerOnly(w, r) {
		return
	}
	todoID, err := pathID(r, "todoId")
	if err != nil {
		writeError(w, err)
		return
	}
	todo, err := tc.todos.Toggle(todoID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (tc *TodosController) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if !tc.ownerOnly(w, r) {
		return
	}
	todoID, err := pathID(r, "todoId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := tc.todos.Delete(todoID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
