// Package tools exposes the Kite trading operations as named,
// schema-described tools and routes tool calls to the broker client.
package tools

import (
	"encoding/json"
	"fmt"

	"kitebot/internal/config"
	"kitebot/internal/kite"
	"kitebot/internal/market"
)

// Toolset binds the tool dispatch table to a broker client and the market
// clock used for order routing.
type Toolset struct {
	cfg    *config.Config
	broker *kite.Client
	clock  *market.Clock
}

// New creates a Toolset around the given broker client.
func New(cfg *config.Config, broker *kite.Client, clock *market.Clock) *Toolset {
	if clock == nil {
		clock = market.NewClock()
	}
	return &Toolset{
		cfg:    cfg,
		broker: broker,
		clock:  clock,
	}
}

// formatResponse renders a tool result as indented JSON text, the single
// payload format every tool returns.
func formatResponse(data any) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to encode response: %v"}`, err)
	}
	return string(out)
}

// Argument-bag accessors. The transport validates shapes upstream, so
// these only extract and coerce, falling back to defaults.

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intArg(args map[string]any, key string) int64 {
	switch v := args[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func floatArg(args map[string]any, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		if direct, ok := args[key].([]string); ok {
			return direct
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
