package tools

import (
	"context"

	"kitebot/internal/portfolio"
)

func (ts *Toolset) getProfile(ctx context.Context, args map[string]any) (string, error) {
	profile, err := ts.broker.Profile(ctx)
	if err != nil {
		return "", err
	}
	return formatResponse(profile), nil
}

func (ts *Toolset) getHoldings(ctx context.Context, args map[string]any) (string, error) {
	holdings, err := ts.broker.Holdings(ctx)
	if err != nil {
		return "", err
	}

	return formatResponse(map[string]any{
		"holdings": holdings,
		"summary":  portfolio.Summarize(holdings),
	}), nil
}

func (ts *Toolset) getPositions(ctx context.Context, args map[string]any) (string, error) {
	positions, err := ts.broker.Positions(ctx)
	if err != nil {
		return "", err
	}
	return formatResponse(positions), nil
}

func (ts *Toolset) getOrders(ctx context.Context, args map[string]any) (string, error) {
	orders, err := ts.broker.Orders(ctx)
	if err != nil {
		return "", err
	}
	return formatResponse(orders), nil
}

func (ts *Toolset) getMargins(ctx context.Context, args map[string]any) (string, error) {
	margins, err := ts.broker.Margins(ctx)
	if err != nil {
		return "", err
	}
	return formatResponse(margins), nil
}
