package tools

import "github.com/cloudwego/eino/schema"

// descriptors enumerates every tool exposed to the agent: name, human
// description and parameter schema. The list is static.
var descriptors = []*schema.ToolInfo{
	{
		Name: "get_login_url",
		Desc: "Generate the Zerodha Kite login URL to authenticate",
	},
	{
		Name: "generate_access_token",
		Desc: "Generate access token using request token from login",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"request_token": {
				Type:     "string",
				Desc:     "Request token from login redirect",
				Required: true,
			},
		}),
	},
	{
		Name: "set_access_token",
		Desc: "Manually set an existing access token",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"token": {
				Type:     "string",
				Desc:     "Access token to set",
				Required: true,
			},
		}),
	},
	{
		Name: "get_profile",
		Desc: "Get user profile and account information from Zerodha",
	},
	{
		Name: "get_holdings",
		Desc: "Get all stock holdings in the portfolio with current values and P&L",
	},
	{
		Name: "get_positions",
		Desc: "Get current day positions (intraday and overnight)",
	},
	{
		Name: "get_orders",
		Desc: "Get all orders placed today with their status",
	},
	{
		Name: "get_quote",
		Desc: "Get the full market quote for a stock",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"symbol": {
				Type:     "string",
				Desc:     "Trading symbol (e.g., HDFCBANK)",
				Required: true,
			},
			"exchange": {
				Type: "string",
				Desc: "Exchange the symbol trades on (default: NSE)",
			},
		}),
	},
	{
		Name: "get_ltp",
		Desc: "Get last traded price for one or more stocks",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"symbols": {
				Type:     "array",
				ElemInfo: &schema.ParameterInfo{Type: "string"},
				Desc:     "Array of trading symbols (e.g., ['HDFCBANK', 'RELIANCE'])",
				Required: true,
			},
		}),
	},
	{
		Name: "buy_stock",
		Desc: "Place a buy order for a stock. Uses regular order during market hours, AMO otherwise.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"symbol": {
				Type:     "string",
				Desc:     "Trading symbol (e.g., HDFCBANK)",
				Required: true,
			},
			"quantity": {
				Type:     "integer",
				Desc:     "Number of shares to buy",
				Required: true,
			},
			"price": {
				Type:     "number",
				Desc:     "Limit price per share",
				Required: true,
			},
			"product": {
				Type: "string",
				Desc: "CNC for delivery, MIS for intraday (default: CNC)",
				Enum: []string{"CNC", "MIS"},
			},
		}),
	},
	{
		Name: "sell_stock",
		Desc: "Place a sell order for a stock. Uses regular order during market hours, AMO otherwise.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"symbol": {
				Type:     "string",
				Desc:     "Trading symbol (e.g., HDFCBANK)",
				Required: true,
			},
			"quantity": {
				Type:     "integer",
				Desc:     "Number of shares to sell",
				Required: true,
			},
			"price": {
				Type:     "number",
				Desc:     "Limit price per share",
				Required: true,
			},
			"product": {
				Type: "string",
				Desc: "CNC for delivery, MIS for intraday (default: CNC)",
				Enum: []string{"CNC", "MIS"},
			},
		}),
	},
	{
		Name: "cancel_order",
		Desc: "Cancel a pending order by order ID",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"order_id": {
				Type:     "string",
				Desc:     "Order ID to cancel",
				Required: true,
			},
			"variety": {
				Type: "string",
				Desc: "Order variety (default: regular)",
				Enum: []string{"regular", "amo"},
			},
		}),
	},
	{
		Name: "get_margins",
		Desc: "Get available margins/funds in the trading account",
	},
	{
		Name: "get_market_status",
		Desc: "Check if NSE market is currently open or closed",
	},
	{
		Name: "get_order_history",
		Desc: "Get the complete history/trail of a specific order",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"order_id": {
				Type:     "string",
				Desc:     "Order ID to get history for",
				Required: true,
			},
		}),
	},
}

// Descriptors returns the schema of every available tool.
func Descriptors() []*schema.ToolInfo {
	return descriptors
}
