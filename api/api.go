package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	raven "github.com/getsentry/raven-go"

	"github.com/jobwatch/jobwatch-backend/db"
	"github.com/jobwatch/jobwatch-backend/models"
)

// API is the HTTP surface of the subscription service. Dependencies are held
// explicitly here rather than as globals so tests can swap in an in-memory
// store.
type API struct {
	Subscribers db.Store
	AdminKey    string
	Templates   map[string]*template.Template
}

// Wording of the concealed 500 body; internals never reach the caller.
const serverErrorMessage = "Something went wrong. Please try again later."

type response struct {
	StatusCode   int
	Message      string
	Response     interface{}
	templateName string
}

type apiHandler func(r *http.Request) response

// wrapper reports 500s to Sentry (with the real message) and then conceals
// them before writing. Responses carrying a template name render as HTML,
// everything else as JSON.
func (api *API) wrapper(handler apiHandler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		response := handler(r)
		if response.StatusCode == http.StatusInternalServerError {
			packet := raven.NewPacket(response.Message, raven.NewHttp(r))
			raven.Capture(packet, nil)
			response.Message = serverErrorMessage
		}
		if response.templateName != "" {
			api.writeHTML(w, response)
		} else {
			api.writeJSON(w, response)
		}
	}
}

// RegisterHandlers binds API functions to the given http server,
// and returns the resulting handler.
func (api *API) RegisterHandlers(mux *http.ServeMux) http.Handler {
	mux.HandleFunc("/subscribe", methodOnly(http.MethodPost, api.wrapper(api.subscribe)))
	mux.HandleFunc("/unsubscribe", methodOnly(http.MethodGet, api.wrapper(api.unsubscribe)))
	mux.HandleFunc("/subscribers", methodOnly(http.MethodGet, api.wrapper(api.subscribers)))
	mux.HandleFunc("/", notFound)
	return middleware(mux)
}

// Anything outside the three endpoints is a plain-text 404. OPTIONS never
// reaches here; the CORS middleware answers preflights itself.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, "Not Found")
}

func methodOnly(method string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			notFound(w, r)
			return
		}
		handler(w, r)
	}
}

// Subscribe is the handler for POST /subscribe.
//   Body: JSON {"email": <address>}
//   Adds the normalized address to the list. Re-subscribing an address that
//   is already on the list is a 200, distinguished only by message text.
func (api *API) subscribe(r *http.Request) response {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Please supply a valid email address")
	}
	_, created, err := models.Subscribe(api.Subscribers, req.Email)
	if err == models.ErrInvalidEmail {
		return badRequest("Please supply a valid email address")
	}
	if err != nil {
		return serverError(err.Error())
	}
	message := "You're already subscribed!"
	if created {
		message = "Subscribed! You'll hear from us when new jobs show up."
	}
	return response{StatusCode: http.StatusOK, Message: message}
}

// Unsubscribe is the handler for GET /unsubscribe?token=<token>.
//   Scans the list for the record the token was issued for, deletes it, and
//   renders a human-readable confirmation page.
func (api *API) unsubscribe(r *http.Request) response {
	token := r.URL.Query().Get("token")
	if token == "" {
		return response{
			StatusCode:   http.StatusBadRequest,
			Message:      "Missing unsubscribe token.",
			templateName: "default",
		}
	}
	email, found, err := models.Unsubscribe(api.Subscribers, token)
	if err != nil {
		return response{
			StatusCode:   http.StatusInternalServerError,
			Message:      err.Error(),
			templateName: "default",
		}
	}
	if !found {
		return response{
			StatusCode:   http.StatusNotFound,
			Message:      "We couldn't find a subscription for that link. It may already be unsubscribed.",
			templateName: "default",
		}
	}
	return response{
		StatusCode:   http.StatusOK,
		Message:      fmt.Sprintf("%s has been unsubscribed. You won't receive any more job alerts.", email),
		templateName: "unsubscribe",
	}
}

// Subscribers is the handler for GET /subscribers?key=<admin secret>.
//   Returns the entire list as {"subscribers": [{email, token, subscribed_at}]}.
//   The secret is compared by exact string equality.
func (api *API) subscribers(r *http.Request) response {
	key := r.URL.Query().Get("key")
	if key == "" || key != api.AdminKey {
		return response{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	}
	subscribers, err := models.GetSubscribers(api.Subscribers)
	if err != nil {
		return serverError(err.Error())
	}
	return response{
		StatusCode: http.StatusOK,
		Response: struct {
			Subscribers []models.Subscriber `json:"subscribers"`
		}{subscribers},
	}
}

// Writes the response as a JSON object to w. Responses with no payload
// become {"message": ...}.
func (api *API) writeJSON(w http.ResponseWriter, apiResponse response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiResponse.StatusCode)
	body := apiResponse.Response
	if body == nil {
		body = struct {
			Message string `json:"message"`
		}{apiResponse.Message}
	}
	b, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		msg := fmt.Sprintf("Internal error: could not format JSON. (%s)\n", err)
		http.Error(w, msg, http.StatusInternalServerError)
		return
	}
	fmt.Fprintf(w, "%s\n", b)
}

// ParseTemplates initializes our HTML template data from the given directory.
func (api *API) ParseTemplates(dir string) {
	names := []string{"default", "unsubscribe"}
	api.Templates = make(map[string]*template.Template)
	for _, name := range names {
		path := fmt.Sprintf("%s/%s.html.tmpl", dir, name)
		tmpl, err := template.ParseFiles(path)
		if err != nil {
			raven.CaptureError(err, nil)
			log.Fatal(err)
		}
		api.Templates[name] = tmpl
	}
}

func (api *API) writeHTML(w http.ResponseWriter, apiResponse response) {
	data := struct {
		Message    string
		StatusText string
	}{
		Message:    apiResponse.Message,
		StatusText: http.StatusText(apiResponse.StatusCode),
	}
	tmpl, ok := api.Templates[apiResponse.templateName]
	if !ok {
		err := fmt.Errorf("Template not found: %s", apiResponse.templateName)
		raven.CaptureError(err, nil)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(apiResponse.StatusCode)
	if err := tmpl.Execute(w, data); err != nil {
		log.Println(err)
		raven.CaptureError(err, nil)
	}
}

func badRequest(format string, a ...interface{}) response {
	return response{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf(format, a...),
	}
}

func serverError(format string, a ...interface{}) response {
	return response{
		StatusCode: http.StatusInternalServerError,
		Message:    fmt.Sprintf(format, a...),
	}
}
