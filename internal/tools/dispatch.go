package tools

import (
	"context"
	"fmt"
)

const authHint = "If authentication error, please use set_access_token or generate_access_token first"

// Dispatch routes a tool call by name to the matching broker operation and
// returns the JSON text payload. Unknown names and underlying call
// failures are both returned as error payloads, never as a panic; nothing
// is retried.
func (ts *Toolset) Dispatch(ctx context.Context, name string, args map[string]any) string {
	if args == nil {
		args = map[string]any{}
	}

	handler, ok := ts.handler(name)
	if !ok {
		return formatResponse(map[string]any{
			"error": fmt.Sprintf("unknown tool: %s", name),
		})
	}

	result, err := handler(ctx, args)
	if err != nil {
		return formatResponse(map[string]any{
			"error": err.Error(),
			"tool":  name,
			"hint":  authHint,
		})
	}
	return result
}

type handlerFunc func(ctx context.Context, args map[string]any) (string, error)

func (ts *Toolset) handler(name string) (handlerFunc, bool) {
	switch name {
	// Authentication
	case "get_login_url":
		return ts.getLoginURL, true
	case "generate_access_token":
		return ts.generateAccessToken, true
	case "set_access_token":
		return ts.setAccessToken, true

	// Profile and portfolio
	case "get_profile":
		return ts.getProfile, true
	case "get_holdings":
		return ts.getHoldings, true
	case "get_positions":
		return ts.getPositions, true
	case "get_orders":
		return ts.getOrders, true

	// Market data
	case "get_quote":
		return ts.getQuote, true
	case "get_ltp":
		return ts.getLTP, true
	case "get_market_status":
		return ts.getMarketStatus, true

	// Trading
	case "buy_stock":
		return ts.buyStock, true
	case "sell_stock":
		return ts.sellStock, true
	case "cancel_order":
		return ts.cancelOrder, true
	case "get_order_history":
		return ts.getOrderHistory, true

	// Account
	case "get_margins":
		return ts.getMargins, true
	}
	return nil, false
}
