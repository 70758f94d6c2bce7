package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/requestctx"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
	"github.com/labstack/echo/v4"
)

type taskResponse struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type createTaskRequest struct {
	Task string `json:"task"`
}

type updateTaskRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

func newTaskResponse(t *models.Task) taskResponse {
	return taskResponse{ID: t.ID, Task: t.Text, Completed: t.Completed}
}

func (s *Server) listTasks(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := s.tasks.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]taskResponse, 0, len(items))
	for i := range items {
		resp = append(resp, newTaskResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	task, err := s.tasks.Create(c.Request().Context(), user.ID, req.Task)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (s *Server) updateTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	task, err := s.tasks.Update(c.Request().Context(), user.ID, id, models.TaskUpdate{
		Text:      req.Task,
		Completed: req.Completed,
	})
	if err != nil {
		return withDetail(err, common.ErrorNotFound, http.StatusNotFound, "Todo not found")
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

func (s *Server) deleteTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(c.Request().Context(), user.ID, id); err != nil {
		return withDetail(err, common.ErrorNotFound, http.StatusNotFound, "Todo not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Todo deleted"})
}

// taskID parses the :id path parameter. Anything that is not an integer
// cannot name a task, so it is reported as not found.
func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Todo not found")
	}
	return id, nil
}

func currentUser(c echo.Context) (*models.User, error) {
	user, ok := requestctx.UserFromContext(c.Request().Context())
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}
