package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const flashCookie = "biblioteca_flash"

// Page is what a template would be rendered from: the view name, pending
// notices and the view data.
type Page struct {
	View    string      `json:"view"`
	Flashes []string    `json:"flashes,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// render consumes pending flash notices and writes the page.
func render(c echo.Context, code int, view string, data interface{}, notices ...string) error {
	flashes := append(popFlashes(c), notices...)
	return c.JSON(code, Page{View: view, Flashes: flashes, Data: data})
}

// redirect queues msg (if any) for the next page render and redirects.
func redirect(c echo.Context, to string, msg string) error {
	if msg != "" {
		addFlash(c, msg)
	}
	return c.Redirect(http.StatusFound, to)
}

func addFlash(c echo.Context, msg string) {
	msgs := append(readFlashes(c), msg)
	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlashes(c echo.Context) []string {
	msgs := readFlashes(c)
	if len(msgs) > 0 {
		c.SetCookie(&http.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return msgs
}

func readFlashes(c echo.Context) []string {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
