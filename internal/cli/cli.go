// Package cli provides an interactive terminal client driving the dispatch
// engine, mirroring the HTTP surface for local use.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"insurance-agent/internal/usecase"
)

const cliUserID = "cli_user"

// Engine is the dispatch surface the CLI drives.
type Engine interface {
	Dispatch(ctx context.Context, in usecase.DispatchInput) (usecase.DispatchResult, error)
	SessionInfo(id string) (usecase.SessionSummary, error)
	PolicyTypes() []string
}

// Client is an interactive conversation loop on a terminal.
type Client struct {
	engine    Engine
	in        io.Reader
	out       io.Writer
	sessionID string

	header    *color.Color
	prompt    *color.Color
	assistant *color.Color
	notice    *color.Color
}

func New(engine Engine, in io.Reader, out io.Writer) (*Client, error) {
	if engine == nil {
		return nil, errors.New("cli: engine must not be nil")
	}
	return &Client{
		engine:    engine,
		in:        in,
		out:       out,
		header:    color.New(color.FgCyan),
		prompt:    color.New(color.FgBlue),
		assistant: color.New(color.FgGreen),
		notice:    color.New(color.FgYellow),
	}, nil
}

// Run drives the conversation loop until EOF or a quit command.
func (c *Client) Run(ctx context.Context) error {
	c.displayWelcome()

	scanner := bufio.NewScanner(c.in)
	for {
		c.prompt.Fprint(c.out, "You: ")
		if !scanner.Scan() {
			c.notice.Fprintln(c.out, "\nGoodbye!")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			c.notice.Fprintln(c.out, "Goodbye!")
			return nil
		case "help":
			c.displayHelp()
		case "new":
			c.sessionID = ""
			c.notice.Fprintln(c.out, "Started a new conversation.")
		case "session":
			c.displaySessionInfo()
		case "policy types":
			c.displayPolicyTypes()
		default:
			c.processMessage(ctx, line)
		}
	}
}

func (c *Client) processMessage(ctx context.Context, message string) {
	result, err := c.engine.Dispatch(ctx, usecase.DispatchInput{
		UserID:    cliUserID,
		Message:   message,
		SessionID: c.sessionID,
	})
	if err != nil {
		c.notice.Fprintf(c.out, "An error occurred: %v\n", err)
		return
	}
	c.sessionID = result.SessionID
	c.assistant.Fprint(c.out, "Assistant: ")
	fmt.Fprintf(c.out, "%s\n\n", result.ResponseText)
}

func (c *Client) displayWelcome() {
	c.header.Fprintln(c.out, strings.Repeat("=", 60))
	c.header.Fprintln(c.out, "          LIFE INSURANCE SUPPORT ASSISTANT")
	c.header.Fprintln(c.out, strings.Repeat("=", 60))
	c.notice.Fprintln(c.out, "Welcome! I'm here to help you with life insurance questions.")
	c.notice.Fprintln(c.out, "Type 'help' for available commands or 'quit' to exit.")
	fmt.Fprintln(c.out)
}

func (c *Client) displayHelp() {
	fmt.Fprintln(c.out, "\nAvailable Commands:")
	fmt.Fprintln(c.out, "  help           - Show this help message")
	fmt.Fprintln(c.out, "  quit           - Exit the application")
	fmt.Fprintln(c.out, "  new            - Start a new conversation")
	fmt.Fprintln(c.out, "  session        - Show current session info")
	fmt.Fprintln(c.out, "  policy types   - List available policy types")
	fmt.Fprintln(c.out, "\nExample Questions:")
	fmt.Fprintln(c.out, "  What is term life insurance?")
	fmt.Fprintln(c.out, "  How do I file a claim?")
	fmt.Fprintln(c.out, "  Am I eligible at age 45?")
	fmt.Fprintln(c.out)
}

func (c *Client) displaySessionInfo() {
	if c.sessionID == "" {
		c.notice.Fprintln(c.out, "\nNo active session")
		return
	}
	summary, err := c.engine.SessionInfo(c.sessionID)
	if err != nil {
		c.notice.Fprintln(c.out, "\nNo active session")
		return
	}
	c.header.Fprintln(c.out, "\nCurrent Session:")
	fmt.Fprintf(c.out, "  ID: %s\n", summary.SessionID)
	fmt.Fprintf(c.out, "  Created: %s\n", summary.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(c.out, "  Messages: %d\n", summary.MessageCount)
	fmt.Fprintf(c.out, "  Duration: %d seconds\n", int(summary.LastActiveAt.Sub(summary.CreatedAt).Seconds()))
}

func (c *Client) displayPolicyTypes() {
	c.header.Fprintln(c.out, "\nAvailable Policy Types:")
	for _, name := range c.engine.PolicyTypes() {
		fmt.Fprintf(c.out, "  - %s\n", titleCase(name))
	}
}

// titleCase turns "term_life" into "Term Life".
func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
