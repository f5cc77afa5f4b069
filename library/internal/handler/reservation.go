package handler

import (
	"net/http"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	reservePath        = "/reservar"
	myReservationsPath = "/minhas_reservas"
)

func (h *Handler) Reservar(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.internalError("ListBooks", err)
	}
	return render(c, http.StatusOK, "reservar", books)
}

func (h *Handler) FazerReserva(c echo.Context) error {
	bookID, ok := pathID(c, "book_id")
	if !ok {
		return redirect(c, reservePath, msgNotFound)
	}
	ctx := c.Request().Context()
	p := auth.PrincipalFrom(ctx)

	if _, err := h.librarySvc.Reserve(ctx, p.UserID, bookID); err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyReserved):
			return redirect(c, reservePath, "Você já reservou este livro.")
		case errors.Is(err, errs.ErrNotFound):
			return redirect(c, reservePath, msgNotFound)
		}
		h.log.Error("Reserve", zap.Int("userID", p.UserID), zap.Int("bookID", bookID), zap.Error(err))
		return redirect(c, reservePath, msgGenericError)
	}
	return redirect(c, myReservationsPath, "Reserva realizada com sucesso.")
}

func (h *Handler) MinhasReservas(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.librarySvc.ListReservations(ctx, auth.PrincipalFrom(ctx).UserID)
	if err != nil {
		return h.internalError("ListReservations", err)
	}
	return render(c, http.StatusOK, "minhas_reservas", items)
}
