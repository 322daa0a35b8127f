package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitebot/internal/config"
	"kitebot/internal/kite"
	"kitebot/internal/market"
)

// openClock is fixed inside the trading session, closedClock outside it.
var (
	openClock = market.NewClockAt(func() time.Time {
		return time.Date(2024, time.January, 10, 12, 0, 0, 0, market.IST)
	})
	closedClock = market.NewClockAt(func() time.Time {
		return time.Date(2024, time.January, 10, 20, 0, 0, 0, market.IST)
	})
)

func testToolset(t *testing.T, clock *market.Clock, handler http.Handler) *Toolset {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		KiteAPIKey:    "apikey",
		KiteAPISecret: "apisecret",
		KiteBaseURL:   srv.URL,
	}
	return New(cfg, kite.NewClient(cfg), clock)
}

func decodePayload(t *testing.T, payload string) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		t.Fatalf("payload is not valid JSON: %v\n%s", err, payload)
	}
	return out
}

func TestDispatchUnknownTool(t *testing.T) {
	ts := testToolset(t, openClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unknown tool must not reach the broker")
	}))

	result := decodePayload(t, ts.Dispatch(context.Background(), "fly_to_moon", nil))
	if result["error"] != "unknown tool: fly_to_moon" {
		t.Errorf("error = %v", result["error"])
	}
}

func TestDispatchLoginURL(t *testing.T) {
	ts := testToolset(t, openClock, http.NewServeMux())

	result := decodePayload(t, ts.Dispatch(context.Background(), "get_login_url", nil))
	if result["success"] != true {
		t.Errorf("success = %v", result["success"])
	}
	if result["login_url"] != "https://kite.zerodha.com/connect/login?v=3&api_key=apikey" {
		t.Errorf("login_url = %v", result["login_url"])
	}
	if _, ok := result["instructions"].([]any); !ok {
		t.Errorf("instructions missing: %v", result)
	}
}

func TestDispatchMarketStatus(t *testing.T) {
	ts := testToolset(t, openClock, http.NewServeMux())

	result := decodePayload(t, ts.Dispatch(context.Background(), "get_market_status", nil))
	if result["is_open"] != true || result["status"] != "OPEN" {
		t.Errorf("unexpected status payload: %v", result)
	}
	if result["order_type_available"] != "REGULAR" {
		t.Errorf("order_type_available = %v", result["order_type_available"])
	}

	ts = testToolset(t, closedClock, http.NewServeMux())
	result = decodePayload(t, ts.Dispatch(context.Background(), "get_market_status", nil))
	if result["is_open"] != false || result["order_type_available"] != "AMO" {
		t.Errorf("unexpected closed payload: %v", result)
	}
}

func TestDispatchHoldingsSummary(t *testing.T) {
	ts := testToolset(t, openClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"success","data":[
			{"tradingsymbol":"HDFCBANK","quantity":10,"average_price":100,"last_price":110,"pnl":100}
		]}`)
	}))

	result := decodePayload(t, ts.Dispatch(context.Background(), "get_holdings", nil))

	summary, ok := result["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary missing: %v", result)
	}
	if summary["total_investment"] != "₹1,000.00" {
		t.Errorf("total_investment = %v", summary["total_investment"])
	}
	if summary["current_value"] != "₹1,100.00" {
		t.Errorf("current_value = %v", summary["current_value"])
	}
	if summary["total_pnl"] != "₹100.00" {
		t.Errorf("total_pnl = %v", summary["total_pnl"])
	}
	if summary["pnl_percentage"] != "10.00%" {
		t.Errorf("pnl_percentage = %v", summary["pnl_percentage"])
	}
	if _, ok := result["holdings"].([]any); !ok {
		t.Errorf("holdings list missing: %v", result)
	}
}

func TestDispatchBuyStockAfterHours(t *testing.T) {
	var gotPath string
	ts := testToolset(t, closedClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"status":"success","data":{"order_id":"230100000001"}}`)
	}))

	args := map[string]any{
		"symbol":   "HDFCBANK",
		"quantity": float64(10),
		"price":    float64(1520.5),
	}
	result := decodePayload(t, ts.Dispatch(context.Background(), "buy_stock", args))

	if gotPath != "/orders/amo" {
		t.Errorf("order placed at %q, want /orders/amo", gotPath)
	}
	if result["success"] != true || result["variety"] != "amo" {
		t.Errorf("unexpected payload: %v", result)
	}
	if result["market_status"] != "Market is CLOSED (AMO order)" {
		t.Errorf("market_status = %v", result["market_status"])
	}
	if result["order_id"] != "230100000001" {
		t.Errorf("order_id = %v", result["order_id"])
	}
}

func TestDispatchSellStockDuringHours(t *testing.T) {
	var gotPath, gotTransaction string
	ts := testToolset(t, openClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotTransaction = r.PostForm.Get("transaction_type")
		fmt.Fprint(w, `{"status":"success","data":{"order_id":"230100000002"}}`)
	}))

	args := map[string]any{
		"symbol":   "RELIANCE",
		"quantity": float64(5),
		"price":    float64(2400),
		"product":  "MIS",
	}
	result := decodePayload(t, ts.Dispatch(context.Background(), "sell_stock", args))

	if gotPath != "/orders/regular" {
		t.Errorf("order placed at %q, want /orders/regular", gotPath)
	}
	if gotTransaction != "SELL" {
		t.Errorf("transaction_type = %q", gotTransaction)
	}
	if result["market_status"] != "Market is OPEN" {
		t.Errorf("market_status = %v", result["market_status"])
	}
}

func TestDispatchErrorPayload(t *testing.T) {
	ts := testToolset(t, openClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"status":"error","message":"Incorrect api_key or access_token.","error_type":"TokenException"}`)
	}))

	result := decodePayload(t, ts.Dispatch(context.Background(), "get_orders", nil))

	if result["tool"] != "get_orders" {
		t.Errorf("tool = %v", result["tool"])
	}
	if result["hint"] != authHint {
		t.Errorf("hint = %v", result["hint"])
	}
	if result["error"] == nil || result["error"] == "" {
		t.Errorf("error message missing: %v", result)
	}
}

func TestDispatchLTP(t *testing.T) {
	ts := testToolset(t, openClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.URL.Query()["i"]
		if len(got) != 2 || got[0] != "NSE:HDFCBANK" || got[1] != "NSE:RELIANCE" {
			t.Errorf("instruments = %v", got)
		}
		fmt.Fprint(w, `{"status":"success","data":{"NSE:HDFCBANK":{"last_price":1520.5},"NSE:RELIANCE":{"last_price":2400}}}`)
	}))

	args := map[string]any{"symbols": []any{"HDFCBANK", "RELIANCE"}}
	result := decodePayload(t, ts.Dispatch(context.Background(), "get_ltp", args))

	if _, ok := result["NSE:HDFCBANK"]; !ok {
		t.Errorf("quote missing: %v", result)
	}
}

func TestDispatchCancelOrderDefaultVariety(t *testing.T) {
	var gotPath, gotMethod string
	ts := testToolset(t, openClock, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		fmt.Fprint(w, `{"status":"success","data":{"order_id":"230100000001"}}`)
	}))

	args := map[string]any{"order_id": "230100000001"}
	result := decodePayload(t, ts.Dispatch(context.Background(), "cancel_order", args))

	if gotMethod != http.MethodDelete || gotPath != "/orders/regular/230100000001" {
		t.Errorf("request %s %s", gotMethod, gotPath)
	}
	if result["message"] != "Order 230100000001 cancelled successfully" {
		t.Errorf("message = %v", result["message"])
	}
}
