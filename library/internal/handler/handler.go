package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/biblioteca/pkg/auth"
	md "github.com/Astemirdum/biblioteca/pkg/middleware"
	"github.com/Astemirdum/biblioteca/pkg/validate"
	_ "github.com/Astemirdum/biblioteca/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const (
	msgNotFound      = "Livro não encontrado."
	msgInvalidForm   = "Preencha todos os campos obrigatórios."
	msgInvalidYear   = "Ano de publicação inválido."
	msgGenericError  = "Não foi possível concluir a operação. Tente novamente."
	msgBadCredential = "Login ou senha incorretos. Tente novamente."
)

type Handler struct {
	librarySvc LibraryService
	sessions   *auth.Sessions
	log        *zap.Logger
}

func New(librarySvc LibraryService, sessions *auth.Sessions, log *zap.Logger) *Handler {
	h := &Handler{
		librarySvc: librarySvc,
		sessions:   sessions,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	web := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.LoadPrincipal(h.sessions, h.loadPrincipal, h.log),
	)
	authed := md.Guard(auth.Authenticated)
	admin := md.Guard(auth.Admin)

	web.GET("/curriculo", h.Curriculo)
	web.GET("/login", h.LoginForm)
	web.POST("/login", h.Login)
	web.GET("/logout", h.Logout, authed)

	web.GET("/inicio", h.Inicio, authed)
	web.GET("/novo", h.Novo, authed)
	web.POST("/criar", h.Criar, authed)
	web.GET("/deletar/:id", h.Deletar, authed)
	web.GET("/editar/:id", h.Editar, authed)
	web.POST("/atualizar/:id", h.Atualizar, authed)

	web.GET("/cadastro", h.CadastroForm, admin)
	web.POST("/cadastro", h.Cadastro, admin)

	web.GET("/reservar", h.Reservar, authed)
	web.GET("/fazer_reserva/:book_id", h.FazerReserva, authed)
	web.GET("/minhas_reservas", h.MinhasReservas, authed)

	web.GET("/dashboard", h.Dashboard, admin)
	web.GET("/cadastro_autor", h.CadastroAutor, admin)
	web.POST("/criar_autor", h.CriarAutor, admin)
	web.GET("/confirmacao_autor", h.ConfirmacaoAutor, authed)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Curriculo(c echo.Context) error {
	return render(c, http.StatusOK, "curriculo", nil)
}

func (h *Handler) loadPrincipal(ctx context.Context, userID int) (auth.Principal, error) {
	user, err := h.librarySvc.GetUser(ctx, userID)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Principal{UserID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

// internalError logs err and answers a bare 500 without driver details.
func (h *Handler) internalError(op string, err error) error {
	h.log.Error(op, zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
