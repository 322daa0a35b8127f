// Package cli provides the command-line interface for kitebot.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kitebot/internal/agents"
	"kitebot/internal/config"
	"kitebot/internal/debug"
	"kitebot/internal/kite"
	"kitebot/internal/market"
	"kitebot/internal/tools"
)

const version = "1.0.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "kitebot",
		Short: "kitebot - AI trading assistant for Zerodha Kite",
		Long: `kitebot exposes the Zerodha Kite Connect trading API as a set of
callable tools and drives them with an LLM-backed assistant.
Chat with your portfolio, check prices and place or cancel orders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start the chat assistant
			return runChat(cfg)
		},
	}

	rootCmd.AddCommand(newChatCmd(cfg))
	rootCmd.AddCommand(newLoginCmd(cfg))
	rootCmd.AddCommand(newMarketCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newChatCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive trading assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cfg)
		},
	}
}

func runChat(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ValidateLLM(); err != nil {
		return err
	}

	ctx := context.Background()

	if err := debug.NewEinoDebugger(cfg).Initialize(ctx); err != nil {
		return err
	}

	broker := kite.NewClient(cfg)
	toolset := tools.New(cfg, broker, market.NewClock())

	assistant, err := agents.NewAssistant(ctx, cfg, toolset)
	if err != nil {
		return err
	}

	showBanner()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("you> "), " ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		input := strings.TrimSpace(line)

		switch input {
		case "":
			continue
		case "exit", "quit":
			fmt.Println(dimStyle.Render("bye"))
			return nil
		case "reset":
			assistant.Reset()
			fmt.Println(dimStyle.Render("conversation cleared"))
			continue
		}

		reply, err := assistant.Ask(ctx, input)
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("error: %v", err)))
			continue
		}
		fmt.Println()
		fmt.Println(reply)
		fmt.Println()
	}
}

func newLoginCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Zerodha and obtain a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			broker := kite.NewClient(cfg)

			fmt.Println("Open this URL in your browser and log in:")
			fmt.Println()
			fmt.Println("  " + promptStyle.Render(broker.LoginURL()))
			fmt.Println()

			token, err := promptRequestToken()
			if err != nil {
				return err
			}

			session, err := broker.GenerateSession(cmd.Context(), token)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(successStyle.Render(fmt.Sprintf("Logged in as %s (%s)", session.UserName, session.UserID)))
			fmt.Println()
			fmt.Println("Session token (valid until ~6:00 AM IST tomorrow):")
			fmt.Println()
			fmt.Println("  export KITE_ACCESS_TOKEN=" + session.AccessToken)
			fmt.Println()
			return nil
		},
	}
}

func newMarketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show whether the NSE market is currently open",
		Run: func(cmd *cobra.Command, args []string) {
			status := market.NewClock().Status()

			render := successStyle
			if !status.IsOpen {
				render = errorStyle
			}
			fmt.Printf("Market: %s\n", render.Render(status.Status))
			fmt.Printf("Hours:  %s\n", status.MarketHours)
			fmt.Printf("Now:    %s\n", status.CurrentTime)
			fmt.Printf("Orders: %s\n", status.OrderTypeAvailable)
		},
	}
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools exposed to the assistant",
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range tools.Descriptors() {
				fmt.Printf("%s\n    %s\n", toolNameStyle.Render(info.Name), info.Desc)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kitebot v%s\n", version)
		},
	}
}
