package rest

import (
	"net/http"

	"github.com/msaemrow/anglers-index-api/internal/transport/middleware"
)

// Handlers collects the REST handlers for router construction.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Lake         *LakeHandler
	Species      *SpeciesHandler
	Lure         *LureHandler
	Catch        *CatchHandler
	TackleBox    *TackleBoxHandler
	MasterAngler *MasterAnglerHandler
}

// NewRouter builds the HTTP mux. Read endpoints are open; endpoints that
// create or change data require an authenticated principal. Admin and
// ownership rules are enforced in the services.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /users/signup", h.Auth.Signup)
	mux.HandleFunc("POST /users/login", h.Auth.Login)
	mux.Handle("POST /users/logout", authed(http.HandlerFunc(h.Auth.Logout)))

	mux.Handle("GET /users", authed(http.HandlerFunc(h.User.List)))
	mux.Handle("GET /users/{id}", authed(http.HandlerFunc(h.User.Get)))
	mux.Handle("PATCH /users/{id}", authed(http.HandlerFunc(h.User.Update)))
	mux.Handle("DELETE /users/{id}", authed(http.HandlerFunc(h.User.Delete)))

	mux.HandleFunc("GET /lakes", h.Lake.List)
	mux.HandleFunc("GET /lakes/{id}", h.Lake.Get)
	mux.Handle("POST /lakes", authed(http.HandlerFunc(h.Lake.Create)))
	mux.Handle("PUT /lakes/{id}", authed(http.HandlerFunc(h.Lake.Update)))
	mux.Handle("DELETE /lakes/{id}", authed(http.HandlerFunc(h.Lake.Delete)))

	mux.HandleFunc("GET /species", h.Species.List)
	mux.HandleFunc("GET /species/{id}", h.Species.Get)
	mux.Handle("POST /species", authed(http.HandlerFunc(h.Species.Create)))
	mux.Handle("PUT /species/{id}", authed(http.HandlerFunc(h.Species.Update)))
	mux.Handle("DELETE /species/{id}", authed(http.HandlerFunc(h.Species.Delete)))

	mux.HandleFunc("GET /lures", h.Lure.List)
	mux.HandleFunc("GET /lures/brands", h.Lure.Brands)
	mux.HandleFunc("GET /lures/user/{user_id}", h.Lure.ListForUser)
	mux.HandleFunc("GET /lures/{id}", h.Lure.Get)
	mux.Handle("POST /lures", authed(http.HandlerFunc(h.Lure.Create)))
	mux.Handle("PUT /lures/{id}", authed(http.HandlerFunc(h.Lure.Update)))
	mux.Handle("DELETE /lures/{id}", authed(http.HandlerFunc(h.Lure.Delete)))

	mux.HandleFunc("GET /fishcatch", h.Catch.List)
	mux.HandleFunc("GET /fishcatch/{id}", h.Catch.Get)
	mux.HandleFunc("POST /fishcatch/weather", h.Catch.Weather)
	mux.Handle("POST /fishcatch", authed(http.HandlerFunc(h.Catch.Create)))
	mux.Handle("PATCH /fishcatch/{id}", authed(http.HandlerFunc(h.Catch.Update)))
	mux.Handle("PUT /fishcatch/{id}/master-angler", authed(http.HandlerFunc(h.Catch.SetMasterAngler)))
	mux.Handle("DELETE /fishcatch/{id}", authed(http.HandlerFunc(h.Catch.Delete)))

	mux.HandleFunc("GET /tackle-box/{user_id}", h.TackleBox.List)
	mux.Handle("POST /tackle-box", authed(http.HandlerFunc(h.TackleBox.Add)))
	mux.Handle("POST /tackle-box/restore", authed(http.HandlerFunc(h.TackleBox.Restore)))
	mux.Handle("DELETE /tackle-box", authed(http.HandlerFunc(h.TackleBox.Remove)))

	mux.HandleFunc("GET /masterangler", h.MasterAngler.List)
	mux.HandleFunc("GET /masterangler/approved/{user_id}", h.MasterAngler.ListApproved)
	mux.Handle("POST /masterangler", authed(http.HandlerFunc(h.MasterAngler.Submit)))
	mux.Handle("PATCH /masterangler/{id}", authed(http.HandlerFunc(h.MasterAngler.Review)))
	mux.Handle("POST /masterangler/{id}/certificate", authed(http.HandlerFunc(h.MasterAngler.Certificate)))

	return mux
}
