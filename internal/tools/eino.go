package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// einoTool adapts one tool descriptor onto the dispatch table so the
// agent runtime can invoke it.
type einoTool struct {
	ts   *Toolset
	info *schema.ToolInfo
}

var _ tool.InvokableTool = (*einoTool)(nil)

func (t *einoTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return t.info, nil
}

func (t *einoTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...tool.Option) (string, error) {
	args := map[string]any{}
	if argumentsInJSON != "" {
		if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
			return "", fmt.Errorf("parse arguments for %s: %w", t.info.Name, err)
		}
	}
	return t.ts.Dispatch(ctx, t.info.Name, args), nil
}

// Tools returns every tool wrapped for the agent runtime.
func (ts *Toolset) Tools() []tool.BaseTool {
	out := make([]tool.BaseTool, 0, len(descriptors))
	for _, info := range descriptors {
		out = append(out, &einoTool{ts: ts, info: info})
	}
	return out
}
