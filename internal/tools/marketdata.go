package tools

import (
	"context"
	"fmt"
)

func (ts *Toolset) getQuote(ctx context.Context, args map[string]any) (string, error) {
	symbol := stringArg(args, "symbol", "")
	exchange := stringArg(args, "exchange", "NSE")
	instrument := fmt.Sprintf("%s:%s", exchange, symbol)

	quote, err := ts.broker.Quote(ctx, []string{instrument})
	if err != nil {
		return "", err
	}
	return formatResponse(quote), nil
}

func (ts *Toolset) getLTP(ctx context.Context, args map[string]any) (string, error) {
	symbols := stringSliceArg(args, "symbols")

	instruments := make([]string, 0, len(symbols))
	for _, s := range symbols {
		instruments = append(instruments, "NSE:"+s)
	}

	ltp, err := ts.broker.LTP(ctx, instruments)
	if err != nil {
		return "", err
	}
	return formatResponse(ltp), nil
}

func (ts *Toolset) getMarketStatus(ctx context.Context, args map[string]any) (string, error) {
	return formatResponse(ts.clock.Status()), nil
}
