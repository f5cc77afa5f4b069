package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/pkg/auth"
	md "github.com/Astemirdum/biblioteca/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) LoginForm(c echo.Context) error {
	return render(c, http.StatusOK, "login", map[string]string{"next": c.QueryParam("next")})
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return render(c, http.StatusOK, "login", nil, msgBadCredential)
	}
	if req.Next == "" {
		req.Next = c.QueryParam("next")
	}
	view := map[string]string{"next": req.Next}

	user, err := h.librarySvc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, errs.ErrInvalidCredentials) {
			h.log.Error("Login", zap.Error(err))
			return render(c, http.StatusOK, "login", view, msgGenericError)
		}
		return render(c, http.StatusOK, "login", view, msgBadCredential)
	}

	cookie, err := h.sessions.Issue(user.ID)
	if err != nil {
		h.log.Error("sessions.Issue", zap.Error(err))
		return render(c, http.StatusOK, "login", view, msgGenericError)
	}
	c.SetCookie(cookie)
	return redirect(c, safeNext(req.Next), "")
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear())
	return redirect(c, md.LoginPath, "")
}

func (h *Handler) CadastroForm(c echo.Context) error {
	return render(c, http.StatusOK, "cadastro", nil)
}

func (h *Handler) Cadastro(c echo.Context) error {
	const formPath = "/cadastro"
	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return redirect(c, formPath, msgInvalidForm)
	}

	user, err := h.librarySvc.RegisterUser(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			return redirect(c, formPath, "Nome de usuário já cadastrado.")
		case errors.Is(err, errs.ErrInvalidForm):
			return redirect(c, formPath, msgInvalidForm)
		}
		h.log.Error("RegisterUser", zap.Error(err))
		return redirect(c, formPath, msgGenericError)
	}
	h.log.Info("user registered",
		zap.String("username", user.Username),
		zap.String("by", auth.PrincipalFrom(c.Request().Context()).Username))
	return redirect(c, formPath, "Usuário cadastrado com sucesso.")
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return homePath
	}
	return next
}
