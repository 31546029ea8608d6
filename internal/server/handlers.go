package server

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/models"
	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

type errorResponse struct {
	Error string `json:"error"`
}

type createTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Labels      []string `json:"labels"`
}

// updateTaskRequest fields left out keep their current value
type updateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Labels      *[]string `json:"labels"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type reorderItem struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Order  int    `json:"order"`
}

type reorderRequest struct {
	Tasks []reorderItem `json:"tasks"`
}

type labelRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type filtersRequest struct {
	Status *string `json:"status"`
	Label  *string `json:"label"`
}

func decodeBody(c echo.Context, v any) error {
	dec := sonic.ConfigStd.NewDecoder(io.LimitReader(c.Request().Body, maxBodySize))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

// failure maps a facade error onto a status code. The body carries the
// fixed operation message, never the underlying cause.
func failure(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case app.IsValidation(err):
		code = http.StatusBadRequest
	case app.IsNotFound(err):
		code = http.StatusNotFound
	}
	return c.JSON(code, errorResponse{Error: err.Error()})
}

func findTask(application *app.App, id string) *models.Task {
	for _, t := range application.Tasks() {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func getState(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, application.Snapshot())
	}
}

func createTask(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		status := models.StatusTodo
		if req.Status != "" {
			status = models.Status(req.Status)
		}

		task, err := application.CreateTask(c.Request().Context(), taskservice.CreateTaskRequest{
			Title:       req.Title,
			Description: req.Description,
			Status:      status,
			LabelIDs:    req.Labels,
		})
		if err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusCreated, task)
	}
}

func updateTask(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		task := findTask(application, c.Param("id"))
		if task == nil {
			return notFound(c, taskservice.ErrTaskNotFound.Error())
		}
		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Labels != nil {
			task.Labels = *req.Labels
		}

		updated, err := application.UpdateTask(c.Request().Context(), task)
		if err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteTask(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := application.RemoveTask(c.Request().Context(), c.Param("id")); err != nil {
			return failure(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func changeStatus(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req statusRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		task, err := application.ChangeStatus(c.Request().Context(), c.Param("id"), models.Status(req.Status))
		if err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func dropTask(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req statusRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		if err := application.DropTask(c.Request().Context(), c.Param("id"), models.Status(req.Status)); err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, application.Snapshot())
	}
}

// reorderTasks applies new status/order pairs on top of the cached tasks
// and persists them as one batch.
func reorderTasks(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req reorderRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}
		if len(req.Tasks) == 0 {
			return badRequest(c, "no tasks to reorder")
		}

		tasks := make([]*models.Task, 0, len(req.Tasks))
		for _, item := range req.Tasks {
			task := findTask(application, item.ID)
			if task == nil {
				return notFound(c, taskservice.ErrTaskNotFound.Error())
			}
			if item.Status != "" {
				task.Status = models.Status(item.Status)
			}
			task.Order = item.Order
			tasks = append(tasks, task)
		}

		if err := application.UpdateTaskOrder(c.Request().Context(), tasks); err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, application.Snapshot())
	}
}

func createLabel(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req labelRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		create := labelservice.CreateLabelRequest{}
		if req.Name != nil {
			create.Name = *req.Name
		}
		if req.Color != nil {
			create.Color = *req.Color
		}

		label, err := application.CreateLabel(c.Request().Context(), create)
		if err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusCreated, label)
	}
}

func updateLabel(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req labelRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		label := models.FindLabel(application.Labels(), c.Param("id"))
		if label == nil {
			return notFound(c, labelservice.ErrLabelNotFound.Error())
		}
		if req.Name != nil {
			label.Name = *req.Name
		}
		if req.Color != nil {
			label.Color = *req.Color
		}

		updated, err := application.UpdateLabel(c.Request().Context(), label)
		if err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteLabel(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := application.RemoveLabel(c.Request().Context(), c.Param("id")); err != nil {
			return failure(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func setFilters(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req filtersRequest
		if err := decodeBody(c, &req); err != nil {
			return badRequest(c, "invalid body")
		}

		if req.Status != nil {
			filter, err := app.ParseStatusFilter(*req.Status)
			if err != nil {
				return badRequest(c, err.Error())
			}
			if err := application.SetStatusFilter(filter); err != nil {
				return badRequest(c, err.Error())
			}
		}
		if req.Label != nil {
			if *req.Label != app.LabelFilterAll && models.FindLabel(application.Labels(), *req.Label) == nil {
				return notFound(c, labelservice.ErrLabelNotFound.Error())
			}
			application.SetLabelFilter(*req.Label)
		}
		return c.JSON(http.StatusOK, application.Snapshot())
	}
}

func dismissCelebration(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		application.DismissCelebration()
		return c.JSON(http.StatusOK, application.Snapshot())
	}
}

// toggleTheme flips the theme. A failed save still switches the theme for
// this process, so the response reports both.
func toggleTheme(application *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := application.ToggleTheme(); err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, application.Snapshot())
	}
}
