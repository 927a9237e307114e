package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/core/service"
)

const listItemsLimit = 20

type HTTPHandler struct {
	catalog  *service.CatalogService
	tokens   *service.TokenService
	purchase *service.PurchaseService
	logger   *zap.Logger
}

type TokenHTTPResponse struct {
	Exposed   bool   `json:"exposed"`
	ItemID    string `json:"item_id"`
	Token     string `json:"token,omitempty"`
	Reason    string `json:"reason,omitempty"`
	NowUnix   int64  `json:"now_unix,omitempty"`
	StartUnix int64  `json:"start_unix,omitempty"`
	EndUnix   int64  `json:"end_unix,omitempty"`
}

type PurchaseHTTPRequest struct {
	BuyerID string `json:"buyer_id"`
	Token   string `json:"token"`
}

type PurchaseHTTPResponse struct {
	State   string                 `json:"state"`
	Message string                 `json:"message"`
	Record  *domain.PurchaseRecord `json:"record,omitempty"`
}

func NewHTTPHandler(catalog *service.CatalogService, tokens *service.TokenService, purchase *service.PurchaseService, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{catalog: catalog, tokens: tokens, purchase: purchase, logger: logger}
}

func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.HealthCheck)
	r.Get("/api/items", h.ListItems)
	r.Get("/api/items/{itemID}", h.GetItem)
	r.Post("/api/items/{itemID}/token", h.IssueToken)
	r.Post("/api/items/{itemID}/purchase", h.Purchase)
	return r
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListActiveItems(r.Context(), time.Now(), listItemsLimit)
	if err != nil {
		h.logger.Error("list items failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *HTTPHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	item, err := h.catalog.GetItem(r.Context(), itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	if err != nil {
		h.logger.Error("get item failed", zap.String("item_id", itemID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *HTTPHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	token, err := h.tokens.IssueToken(r.Context(), itemID)
	if err != nil {
		var windowErr *domain.WindowError
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			writeJSON(w, http.StatusNotFound, TokenHTTPResponse{
				Exposed: false,
				ItemID:  itemID,
				Reason:  "ITEM_NOT_FOUND",
			})
		case errors.As(err, &windowErr):
			writeJSON(w, http.StatusOK, TokenHTTPResponse{
				Exposed:   false,
				ItemID:    itemID,
				Reason:    string(windowErr.Reason),
				NowUnix:   windowErr.Now.Unix(),
				StartUnix: windowErr.StartTime.Unix(),
				EndUnix:   windowErr.EndTime.Unix(),
			})
		default:
			h.logger.Error("issue token failed", zap.String("item_id", itemID), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, TokenHTTPResponse{
		Exposed: true,
		ItemID:  token.ItemID,
		Token:   token.Value,
	})
}

func (h *HTTPHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req PurchaseHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, PurchaseHTTPResponse{
			State:   string(domain.StateInvalidToken),
			Message: "invalid request body",
		})
		return
	}
	if req.BuyerID == "" || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, PurchaseHTTPResponse{
			State:   string(domain.StateInvalidToken),
			Message: "missing required fields",
		})
		return
	}

	execution := h.purchase.Execute(r.Context(), itemID, req.BuyerID, req.Token)
	writeJSON(w, statusForState(execution.State), PurchaseHTTPResponse{
		State:   string(execution.State),
		Message: messageForState(execution.State),
		Record:  execution.Record,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusForState(state domain.ExecutionState) int {
	switch state {
	case domain.StateSuccess:
		return http.StatusOK
	case domain.StateRepeatPurchase:
		return http.StatusConflict
	case domain.StateSaleEnded:
		return http.StatusGone
	case domain.StateSaleNotStarted, domain.StateInvalidToken:
		return http.StatusForbidden
	case domain.StateItemNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func messageForState(state domain.ExecutionState) string {
	switch state {
	case domain.StateSuccess:
		return "purchase recorded"
	case domain.StateRepeatPurchase:
		return "already purchased"
	case domain.StateSaleNotStarted:
		return "sale has not started"
	case domain.StateSaleEnded:
		return "sale ended"
	case domain.StateItemNotFound:
		return "item not found"
	case domain.StateInvalidToken:
		return "invalid token"
	default:
		return "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
