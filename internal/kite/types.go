package kite

import "fmt"

// Error is an error returned by the Kite Connect API envelope.
type Error struct {
	Code      int    `json:"-"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func (e *Error) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("kite: %s (%s)", e.Message, e.ErrorType)
	}
	return fmt.Sprintf("kite: %s", e.Message)
}

// envelope is the common response wrapper used by all Kite endpoints.
type envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type"`
}

// UserSession is the result of exchanging a request token.
type UserSession struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	PublicToken string `json:"public_token"`
	LoginTime   string `json:"login_time"`
}

// UserProfile holds account information for the logged-in user.
type UserProfile struct {
	UserID    string   `json:"user_id"`
	UserName  string   `json:"user_name"`
	UserType  string   `json:"user_type"`
	Email     string   `json:"email"`
	Broker    string   `json:"broker"`
	Exchanges []string `json:"exchanges"`
	Products  []string `json:"products"`
}

// Holding is a single demat holding.
type Holding struct {
	TradingSymbol string  `json:"tradingsymbol"`
	Exchange      string  `json:"exchange"`
	ISIN          string  `json:"isin"`
	Product       string  `json:"product"`
	Quantity      int64   `json:"quantity"`
	T1Quantity    int64   `json:"t1_quantity"`
	AveragePrice  float64 `json:"average_price"`
	LastPrice     float64 `json:"last_price"`
	ClosePrice    float64 `json:"close_price"`
	PnL           float64 `json:"pnl"`
	DayChange     float64 `json:"day_change"`
	DayChangePct  float64 `json:"day_change_percentage"`
}

// Position is a single open position for the day.
type Position struct {
	TradingSymbol   string  `json:"tradingsymbol"`
	Exchange        string  `json:"exchange"`
	Product         string  `json:"product"`
	Quantity        int64   `json:"quantity"`
	OvernightQty    int64   `json:"overnight_quantity"`
	AveragePrice    float64 `json:"average_price"`
	LastPrice       float64 `json:"last_price"`
	Value           float64 `json:"value"`
	PnL             float64 `json:"pnl"`
	M2M             float64 `json:"m2m"`
	Realised        float64 `json:"realised"`
	Unrealised      float64 `json:"unrealised"`
	BuyQuantity     int64   `json:"buy_quantity"`
	BuyPrice        float64 `json:"buy_price"`
	SellQuantity    int64   `json:"sell_quantity"`
	SellPrice       float64 `json:"sell_price"`
	MultiplierValue float64 `json:"multiplier"`
}

// Positions groups the day's net and daily position lists.
type Positions struct {
	Net []Position `json:"net"`
	Day []Position `json:"day"`
}

// Order is an order placed on the exchange, as reported by the order book.
type Order struct {
	OrderID         string  `json:"order_id"`
	ParentOrderID   string  `json:"parent_order_id"`
	ExchangeOrderID string  `json:"exchange_order_id"`
	Status          string  `json:"status"`
	StatusMessage   string  `json:"status_message"`
	OrderTimestamp  string  `json:"order_timestamp"`
	Variety         string  `json:"variety"`
	Exchange        string  `json:"exchange"`
	TradingSymbol   string  `json:"tradingsymbol"`
	TransactionType string  `json:"transaction_type"`
	OrderType       string  `json:"order_type"`
	Product         string  `json:"product"`
	Validity        string  `json:"validity"`
	Quantity        int64   `json:"quantity"`
	FilledQuantity  int64   `json:"filled_quantity"`
	PendingQuantity int64   `json:"pending_quantity"`
	Price           float64 `json:"price"`
	TriggerPrice    float64 `json:"trigger_price"`
	AveragePrice    float64 `json:"average_price"`
}

// OrderParams are the parameters for placing an order.
type OrderParams struct {
	Exchange        string
	TradingSymbol   string
	TransactionType string
	OrderType       string
	Product         string
	Validity        string
	Quantity        int64
	Price           float64
}

// Quote is the full market quote for an instrument.
type Quote struct {
	InstrumentToken int64   `json:"instrument_token"`
	LastPrice       float64 `json:"last_price"`
	LastQuantity    int64   `json:"last_quantity"`
	Volume          int64   `json:"volume"`
	AveragePrice    float64 `json:"average_price"`
	OHLC            OHLC    `json:"ohlc"`
	NetChange       float64 `json:"net_change"`
}

// OHLC is the open/high/low/close block of a quote.
type OHLC struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// LTPQuote is the minimal last-traded-price quote.
type LTPQuote struct {
	InstrumentToken int64   `json:"instrument_token"`
	LastPrice       float64 `json:"last_price"`
}

// SegmentMargins holds the funds available in one segment (equity or
// commodity).
type SegmentMargins struct {
	Enabled   bool               `json:"enabled"`
	Net       float64            `json:"net"`
	Available map[string]float64 `json:"available"`
	Utilised  map[string]float64 `json:"utilised"`
}

// Margins holds the account funds across segments.
type Margins struct {
	Equity    SegmentMargins `json:"equity"`
	Commodity SegmentMargins `json:"commodity"`
}
