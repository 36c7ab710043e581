// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/okian/discountmate/pkg/logger"
)

// Basket defaults for absent request fields.
const (
	defaultTotal = 0.0
	defaultItems = 1
	defaultTier  = "bronze"
)

// RecommendHandler handles discount recommendation requests.
type RecommendHandler struct {
	deps Dependencies
}

// NewRecommendHandler creates a new recommend handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// HandleRecommend handles POST /recommend requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	total, items, tierName, err := parseBasketRequest(r.Body)
	if err != nil {
		// The caller only ever sees the generic message; the cause goes to the logs.
		logger.Get().Debug(r.Context(), "rejecting malformed basket",
			logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if total < 0 || items <= 0 {
		logger.Get().Debug(r.Context(), "rejecting out-of-range basket",
			logger.Error(NewKind(op, ErrBadRequest)),
			logger.Float64("total", total),
			logger.Int("items", items))
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	discount, err := h.deps.Recommend(r.Context(), total, items, tierName)
	if err != nil {
		logger.Get().Error(r.Context(), "recommendation failed",
			logger.Error(WrapKind(op, ErrInternal, err)))
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{Discount: discount})
}

// parseBasketRequest decodes a request body into (total, items, tier) with
// defaults for absent fields. Coercion is deliberately ad hoc: numeric
// fields accept JSON numbers or numeric strings, anything else is rejected.
func parseBasketRequest(body io.Reader) (total float64, items int, tierName string, err error) {
	total, items, tierName = defaultTotal, defaultItems, defaultTier

	dec := json.NewDecoder(body)
	dec.UseNumber()

	var payload map[string]any
	if decodeErr := dec.Decode(&payload); decodeErr != nil {
		if errors.Is(decodeErr, io.EOF) {
			// Empty body: all defaults.
			return total, items, tierName, nil
		}
		return 0, 0, "", decodeErr
	}

	if raw, ok := payload["total"]; ok {
		if total, err = coerceFloat(raw); err != nil {
			return 0, 0, "", err
		}
	}
	if raw, ok := payload["items"]; ok {
		if items, err = coerceInt(raw); err != nil {
			return 0, 0, "", err
		}
	}
	if raw, ok := payload["tier"]; ok {
		tierName = coerceString(raw)
	}
	return total, items, tierName, nil
}

// coerceFloat accepts JSON numbers and numeric strings.
func coerceFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("cannot coerce %T to float", v)
	}
}

// coerceInt accepts JSON integers, truncates JSON floats, and parses
// integer strings.
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}

// coerceString stringifies whatever arrived; non-string tiers end up as
// unknown names and fall back to the lowest tier downstream.
func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
