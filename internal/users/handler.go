package users

import (
	"log/slog"
	"net/http"

	"github.com/robinspt/food-inventory-system/pkg/handlers"
	"github.com/robinspt/food-inventory-system/pkg/routes"
)

// Handler provides the registration and login endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

// Routes returns the account endpoints. They sit at the API root.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Users"},
		Description: "Account registration and login",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register, OpenAPI: Spec.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login, OpenAPI: Spec.Login},
		},
	}
}

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := handlers.DecodeJSON[Credentials](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if _, err := h.sys.Register(r.Context(), creds); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := handlers.DecodeJSON[Credentials](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	u, err := h.sys.Authenticate(r.Context(), creds)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, LoginResult{
		Message:  "Login successful",
		Username: u.Username,
	})
}
