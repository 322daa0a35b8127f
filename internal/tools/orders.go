package tools

import (
	"context"
	"fmt"

	"kitebot/internal/kite"
)

func (ts *Toolset) buyStock(ctx context.Context, args map[string]any) (string, error) {
	return ts.placeOrder(ctx, kite.TransactionBuy, args)
}

func (ts *Toolset) sellStock(ctx context.Context, args map[string]any) (string, error) {
	return ts.placeOrder(ctx, kite.TransactionSell, args)
}

// placeOrder places a limit order on NSE with DAY validity. The variety is
// chosen from the market clock: regular during trading hours, AMO after.
func (ts *Toolset) placeOrder(ctx context.Context, transactionType string, args map[string]any) (string, error) {
	symbol := stringArg(args, "symbol", "")
	quantity := intArg(args, "quantity")
	price := floatArg(args, "price")
	product := stringArg(args, "product", kite.ProductCNC)
	variety := ts.clock.OrderVariety()

	orderID, err := ts.broker.PlaceOrder(ctx, variety, kite.OrderParams{
		Exchange:        "NSE",
		TradingSymbol:   symbol,
		TransactionType: transactionType,
		Quantity:        quantity,
		Product:         product,
		OrderType:       "LIMIT",
		Price:           price,
		Validity:        "DAY",
	})
	if err != nil {
		return "", err
	}

	action := "Buy"
	if transactionType == kite.TransactionSell {
		action = "Sell"
	}

	marketStatus := "Market is CLOSED (AMO order)"
	if ts.clock.IsOpen() {
		marketStatus = "Market is OPEN"
	}

	return formatResponse(map[string]any{
		"success":  true,
		"order_id": orderID,
		"variety":  variety,
		"message": fmt.Sprintf("%s order placed successfully for %d shares of %s at ₹%v",
			action, quantity, symbol, price),
		"market_status": marketStatus,
	}), nil
}

func (ts *Toolset) cancelOrder(ctx context.Context, args map[string]any) (string, error) {
	orderID := stringArg(args, "order_id", "")
	variety := stringArg(args, "variety", kite.VarietyRegular)

	cancelled, err := ts.broker.CancelOrder(ctx, variety, orderID)
	if err != nil {
		return "", err
	}

	return formatResponse(map[string]any{
		"success":  true,
		"order_id": cancelled,
		"message":  fmt.Sprintf("Order %s cancelled successfully", orderID),
	}), nil
}

func (ts *Toolset) getOrderHistory(ctx context.Context, args map[string]any) (string, error) {
	orderID := stringArg(args, "order_id", "")

	history, err := ts.broker.OrderHistory(ctx, orderID)
	if err != nil {
		return "", err
	}
	return formatResponse(history), nil
}
