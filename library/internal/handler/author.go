package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) CadastroAutor(c echo.Context) error {
	return render(c, http.StatusOK, "cadastro_autor", nil)
}

func (h *Handler) CriarAutor(c echo.Context) error {
	const formPath = "/cadastro_autor"
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}

	if _, err := h.librarySvc.CreateAuthor(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			return redirect(c, formPath, "Autor já cadastrado.")
		case errors.Is(err, errs.ErrInvalidForm):
			return redirect(c, formPath, msgInvalidForm)
		}
		return redirect(c, formPath, "Erro ao cadastrar autor. Tente novamente.")
	}
	return redirect(c, "/confirmacao_autor", "Autor cadastrado com sucesso.")
}

func (h *Handler) ConfirmacaoAutor(c echo.Context) error {
	return render(c, http.StatusOK, "confirmacao_autor", nil)
}
