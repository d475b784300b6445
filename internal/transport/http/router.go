package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ukaji3/reportfill-go/internal/transport/http/handlers"
	"github.com/ukaji3/reportfill-go/web"
)

func NewRouter(
	httpHandlers *handlers.HTTPHandlers,
) http.Handler {
	r := chi.NewRouter()

	r.Get("/", httpHandlers.Index)
	r.Get("/json", httpHandlers.GetSheet)
	r.Post("/download", httpHandlers.Download)
	r.Post("/email", httpHandlers.Email)
	r.Get("/envcheck", httpHandlers.EnvCheck)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		// web.FS always embeds static/.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}
