// Package agents wires the trading toolset into a ReAct agent that an
// LLM drives through tool calls.
package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"kitebot/internal/config"
	"kitebot/internal/tools"
)

const systemPrompt = `You are a trading assistant for a Zerodha account.
Use the provided tools to answer questions about the portfolio, market
prices and orders, and to place or cancel orders when the user explicitly
asks for it.

Before any trading tool works the user must be authenticated: guide them
through get_login_url and generate_access_token if a call fails with an
authentication error. Never place or cancel an order the user did not ask
for, and restate symbol, quantity and price before confirming an order was
placed.

For your reference, the current date is %s.`

// Assistant is a conversational agent holding the dialog history of one
// session. It is not safe for concurrent use; the CLI drives it from a
// single loop.
type Assistant struct {
	agent   *react.Agent
	history []*schema.Message
}

// NewAssistant builds the ReAct agent over the trading toolset.
func NewAssistant(ctx context.Context, cfg *config.Config, ts *tools.Toolset) (*Assistant, error) {
	chatModel, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          cfg.MaxSteps,
		ToolCallingModel: chatModel,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: ts.Tools(),
		},
		StreamToolCallChecker: ToolCallChecker,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	return &Assistant{
		agent: agent,
		history: []*schema.Message{
			schema.SystemMessage(fmt.Sprintf(systemPrompt, time.Now().Format("2006-01-02"))),
		},
	}, nil
}

// Ask sends one user message through the agent and returns the final
// assistant reply. The exchange is appended to the session history.
func (a *Assistant) Ask(ctx context.Context, input string) (string, error) {
	a.history = append(a.history, schema.UserMessage(input))

	reply, err := a.agent.Generate(ctx, a.history)
	if err != nil {
		// Keep history consistent: drop the message that failed.
		a.history = a.history[:len(a.history)-1]
		return "", fmt.Errorf("generate reply: %w", err)
	}

	a.history = append(a.history, reply)
	return reply.Content, nil
}

// Reset clears the dialog history, keeping the system prompt.
func (a *Assistant) Reset() {
	a.history = a.history[:1]
}
