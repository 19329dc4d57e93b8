package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/api/metrics"
	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// EconomyHandler handles token purchases and rank progression.
type EconomyHandler struct {
	economy ports.EconomyService
}

func NewEconomyHandler(economy ports.EconomyService) *EconomyHandler {
	return &EconomyHandler{economy: economy}
}

type buyTokensRequest struct {
	// Amount is accepted as a JSON number; anything that does not parse as a
	// positive integer is rejected.
	Amount json.Number `json:"amount"`
}

type buyRankRequest struct {
	NewRank string `json:"newRank"`
}

type balanceResponse struct {
	Message string `json:"message"`
	Tokens  int    `json:"tokens"`
}

type rankResponse struct {
	Rank string `json:"rank"`
}

type tokensResponse struct {
	Tokens int `json:"tokens"`
}

type checkRankResponse struct {
	Message string `json:"message"`
	Rank    string `json:"rank"`
	Tokens  *int   `json:"tokens,omitempty"`
}

// BuyTokens increments the caller's balance by a positive amount.
//
// @Summary      Buy tokens
// @Tags         economy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      buyTokensRequest  true  "Amount"
// @Success      200   {object}  balanceResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /buy-tokens [post]
func (h *EconomyHandler) BuyTokens(c echo.Context) error {
	var req buyTokensRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	amount, err := req.Amount.Int64()
	if err != nil {
		return domain.ErrInvalidAmount
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.economy.BuyTokens(c.Request().Context(), identity, int(amount))
	if err != nil {
		return err
	}

	metrics.TokensPurchasedTotal.Add(float64(amount))
	return c.JSON(http.StatusOK, balanceResponse{Message: "tokens added", Tokens: result.Tokens})
}

// CheckTokens returns the caller's balance.
//
// @Summary      Check token balance
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tokensResponse
// @Failure      404  {object}  map[string]string
// @Router       /check-tokens [get]
func (h *EconomyHandler) CheckTokens(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tokens, err := h.economy.CheckTokens(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokensResponse{Tokens: tokens})
}

// ShowRank returns the caller's current rank.
//
// @Summary      Show current rank
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rankResponse
// @Failure      404  {object}  map[string]string
// @Router       /show-rank [post]
func (h *EconomyHandler) ShowRank(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rank, err := h.economy.ShowRank(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rankResponse{Rank: rank})
}

// BuyRank spends tokens on a named higher rank.
//
// @Summary      Buy a rank
// @Tags         economy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      buyRankRequest  true  "Target rank"
// @Success      200   {object}  balanceResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /buy-rank [post]
func (h *EconomyHandler) BuyRank(c echo.Context) error {
	var req buyRankRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.economy.BuyRank(c.Request().Context(), identity, req.NewRank)
	if err != nil {
		return err
	}

	metrics.RankPurchasesTotal.WithLabelValues(result.Rank).Inc()
	return c.JSON(http.StatusOK, balanceResponse{
		Message: fmt.Sprintf("congratulations, you are now %s", result.Rank),
		Tokens:  result.Tokens,
	})
}

// CheckRank attempts an automatic upgrade to the first affordable higher rank.
//
// @Summary      Check rank and auto-upgrade when affordable
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkRankResponse
// @Failure      404  {object}  map[string]string
// @Router       /check-rank [get]
func (h *EconomyHandler) CheckRank(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.economy.AutoUpgrade(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	// The top-of-table reply deliberately omits the balance; the other two
	// include it, matching the original responses.
	if result.AtTop {
		return c.JSON(http.StatusOK, checkRankResponse{
			Message: "you have the highest rank!",
			Rank:    result.Rank,
		})
	}

	tokens := result.Tokens
	resp := checkRankResponse{Rank: result.Rank, Tokens: &tokens}
	if result.Upgraded {
		metrics.RankPurchasesTotal.WithLabelValues(result.Rank).Inc()
		resp.Message = fmt.Sprintf("congratulations, you upgraded to %s", result.Rank)
	} else {
		resp.Message = "not enough tokens for an upgrade yet"
	}
	return c.JSON(http.StatusOK, resp)
}
