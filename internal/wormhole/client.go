// Package wormhole invokes the magic-wormhole command-line tool to move
// recording archives between machines.
package wormhole

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Transfer is the narrow surface the orchestrators depend on, so the
// underlying transfer mechanism stays swappable.
type Transfer interface {
	// Send transfers the file at path. Blocks until the tool exits; the
	// one-time code is printed by the tool itself.
	Send(ctx context.Context, path string) error
	// Receive fetches the file identified by code into outputPath.
	Receive(ctx context.Context, code, outputPath string) error
}

// TransferError wraps a non-zero exit from the transfer tool.
type TransferError struct {
	Op  string // "send" or "receive"
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("wormhole %s failed: %v", e.Op, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Client runs the wormhole binary as a child process.
type Client struct {
	Executable string // defaults to "wormhole"
}

func NewClient() *Client {
	return &Client{Executable: "wormhole"}
}

// CheckInstalled reports whether the wormhole binary is on PATH.
func (c *Client) CheckInstalled() error {
	if _, err := exec.LookPath(c.executable()); err != nil {
		return fmt.Errorf("wormhole not found. Install with: pipx install magic-wormhole")
	}
	return nil
}

func (c *Client) executable() string {
	if c.Executable != "" {
		return c.Executable
	}
	return "wormhole"
}

// Send runs `wormhole send <path>`. The tool prints the one-time code and
// progress to the terminal, so stdio is passed through. Blocks until the
// transfer completes or fails.
func (c *Client) Send(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, c.executable(), "send", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &TransferError{Op: "send", Err: err}
	}
	return nil
}

// Receive runs `wormhole receive -o <outputPath> <code>`. Blocks until the
// transfer completes or fails.
func (c *Client) Receive(ctx context.Context, code, outputPath string) error {
	cmd := exec.CommandContext(ctx, c.executable(), "receive", "-o", outputPath, code)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &TransferError{Op: "receive", Err: err}
	}
	return nil
}
