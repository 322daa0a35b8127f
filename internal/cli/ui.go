package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	toolNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8B5CF6")).
		Bold(true)

	dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))
)

// showBanner prints the chat welcome screen.
func showBanner() {
	fmt.Println(titleStyle.Render("🤖 kitebot — Zerodha trading assistant"))
	fmt.Println()
	fmt.Println("Ask about your portfolio, market prices and orders, or place")
	fmt.Println("and cancel orders. Authenticate first with the 'login' command")
	fmt.Println("or by asking the assistant for the login URL.")
	fmt.Println()
	fmt.Println(dimStyle.Render("Commands: reset — clear the conversation, exit — quit"))
	fmt.Println()
}
