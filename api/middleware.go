package api

import (
	"fmt"
	"net/http"
	"os"

	raven "github.com/getsentry/raven-go"
	"github.com/gorilla/handlers"
)

// middleware wraps the mux with access logging, panic recovery, and
// permissive CORS. Every response, errors included, carries the CORS headers
// so browser clients can read the body; preflight OPTIONS requests on any
// path get an empty 200 from the CORS handler.
func middleware(mux *http.ServeMux) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.LoggingHandler(os.Stdout, recoveryHandler(cors(mux)))
}

func recoveryHandler(f http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		defer func() {
			if err, ok := recover().(error); ok {
				rvalStr := fmt.Sprint(err)
				packet := raven.NewPacket(rvalStr, raven.NewException(err, raven.GetOrNewStacktrace(err, 2, 3, nil)), raven.NewHttp(r))
				raven.Capture(packet, nil)
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		f.ServeHTTP(w, r)
	})
}
