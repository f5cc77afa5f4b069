package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const homePath = "/inicio"

func (h *Handler) Inicio(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.internalError("ListBooks", err)
	}
	return render(c, http.StatusOK, "lista", books)
}

func (h *Handler) Novo(c echo.Context) error {
	return render(c, http.StatusOK, "novo", map[string]string{"titulo": "Novo Livro"})
}

func (h *Handler) Criar(c echo.Context) error {
	const formPath = "/novo"
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}

	if _, err := h.librarySvc.CreateBook(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidForm):
			return redirect(c, formPath, msgInvalidForm)
		case errors.Is(err, errs.ErrInvalidYear):
			return redirect(c, formPath, msgInvalidYear)
		}
		h.log.Error("CreateBook", zap.Error(err))
		return redirect(c, formPath, msgGenericError)
	}
	return redirect(c, homePath, "")
}

func (h *Handler) Deletar(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return redirect(c, homePath, msgNotFound)
	}
	if err := h.librarySvc.DeleteBook(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return redirect(c, homePath, msgNotFound)
		}
		h.log.Error("DeleteBook", zap.Int("id", id), zap.Error(err))
		return redirect(c, homePath, msgGenericError)
	}
	return redirect(c, homePath, "")
}

func (h *Handler) Editar(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return redirect(c, homePath, msgNotFound)
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return redirect(c, homePath, msgNotFound)
		}
		return h.internalError("GetBook", err)
	}
	return render(c, http.StatusOK, "editar", book)
}

func (h *Handler) Atualizar(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return redirect(c, homePath, msgNotFound)
	}
	formPath := fmt.Sprintf("/editar/%d", id)

	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}

	if err := h.librarySvc.UpdateBook(c.Request().Context(), id, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidForm):
			return redirect(c, formPath, msgInvalidForm)
		case errors.Is(err, errs.ErrInvalidYear):
			return redirect(c, formPath, msgInvalidYear)
		case errors.Is(err, errs.ErrNotFound):
			return redirect(c, homePath, msgNotFound)
		}
		h.log.Error("UpdateBook", zap.Int("id", id), zap.Error(err))
		return redirect(c, formPath, msgGenericError)
	}
	return redirect(c, homePath, "")
}
