package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Dashboard(c echo.Context) error {
	stat, err := h.librarySvc.Dashboard(c.Request().Context())
	if err != nil {
		return h.internalError("Dashboard", err)
	}
	return render(c, http.StatusOK, "dashboard", stat)
}
