package kite

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Order varieties understood by the API.
const (
	VarietyRegular = "regular"
	VarietyAMO     = "amo"
)

// Transaction types.
const (
	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
)

// Products.
const (
	ProductCNC = "CNC"
	ProductMIS = "MIS"
)

// PlaceOrder places an order of the given variety and returns the order ID
// assigned by the OMS. Validation of symbol, quantity and price is left to
// the exchange.
func (c *Client) PlaceOrder(ctx context.Context, variety string, params OrderParams) (string, error) {
	form := map[string]string{
		"exchange":         params.Exchange,
		"tradingsymbol":    params.TradingSymbol,
		"transaction_type": params.TransactionType,
		"quantity":         strconv.FormatInt(params.Quantity, 10),
		"product":          params.Product,
		"order_type":       params.OrderType,
		"validity":         params.Validity,
	}
	if params.Price > 0 {
		form["price"] = strconv.FormatFloat(params.Price, 'f', -1, 64)
	}

	var result struct {
		OrderID string `json:"order_id"`
	}
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetFormData(form).Post("/orders/" + url.PathEscape(variety))
	}, &result)
	if err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}
	return result.OrderID, nil
}

// CancelOrder cancels a pending order and returns its ID.
func (c *Client) CancelOrder(ctx context.Context, variety, orderID string) (string, error) {
	var result struct {
		OrderID string `json:"order_id"`
	}
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Delete("/orders/" + url.PathEscape(variety) + "/" + url.PathEscape(orderID))
	}, &result)
	if err != nil {
		return "", fmt.Errorf("cancel order: %w", err)
	}
	return result.OrderID, nil
}
