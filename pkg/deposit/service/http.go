package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/routelabs/sweep-middleware/pkg/app/errors"
	apphttp "github.com/routelabs/sweep-middleware/pkg/app/http"
	"github.com/routelabs/sweep-middleware/pkg/deposit"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the deposit endpoints on the given chi router.
// routeAuth guards the sweep trigger; pass a pass-through middleware to
// leave it open.
func RegisterRoutes(r chi.Router, service Service, routeAuth func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/deposits", apphttp.HandleError(h.createDeposit))
	r.Get("/deposits", apphttp.HandleError(h.listDeposits))
	r.With(routeAuth).Post("/route", apphttp.HandleError(h.route))
}

// CreateDepositRequest represents a deposit creation request
type CreateDepositRequest struct {
	User string `json:"user"`
}

// CreateDepositResponse carries the id of the created deposit
type CreateDepositResponse struct {
	ID int64 `json:"id"`
}

// RouteRequest optionally narrows a sweep run to one deposit address
type RouteRequest struct {
	Address string `json:"address,omitempty"`
}

// DepositView is the wire representation of a deposit
type DepositView struct {
	ID          int64  `json:"id"`
	User        string `json:"user"`
	Salt        string `json:"salt"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	RouteTxHash string `json:"route_tx_hash,omitempty"`
	LastError   string `json:"last_error,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toDepositView(dep *deposit.Deposit) DepositView {
	return DepositView{
		ID:          dep.ID,
		User:        dep.User.Hex(),
		Salt:        dep.SaltHex(),
		Address:     dep.Address.Hex(),
		Status:      string(dep.Status),
		RouteTxHash: dep.RouteTxHash,
		LastError:   dep.LastError,
		CreatedAt:   dep.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:   dep.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func (h *HTTP) createDeposit(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req CreateDepositRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	dep, err := h.service.CreateDeposit(r.Context(), req.User)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, CreateDepositResponse{ID: dep.ID})
	return nil
}

func (h *HTTP) listDeposits(w http.ResponseWriter, r *http.Request) error {
	query := ListQuery{
		User:    r.URL.Query().Get("user"),
		Salt:    r.URL.Query().Get("salt"),
		Address: r.URL.Query().Get("address"),
		Status:  r.URL.Query().Get("status"),
	}

	var err error
	if query.Limit, err = intParam(r, "limit"); err != nil {
		return apperrors.BadRequestError(err, "invalid limit")
	}
	if query.Offset, err = intParam(r, "offset"); err != nil {
		return apperrors.BadRequestError(err, "invalid offset")
	}

	deposits, err := h.service.ListDeposits(r.Context(), query)
	if err != nil {
		return err
	}

	views := make([]DepositView, 0, len(deposits))
	for _, dep := range deposits {
		views = append(views, toDepositView(dep))
	}
	apphttp.WriteJSON(w, http.StatusOK, views)
	return nil
}

func (h *HTTP) route(w http.ResponseWriter, r *http.Request) error {
	var req RouteRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return apperrors.BadRequestError(err, "invalid JSON")
		}
	}

	summary, err := h.service.Route(r.Context(), req.Address)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, summary)
	return nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
