package manim

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"proofsheet/internal/services"
)

// Renderer defines the behaviour required by the render workflow.
type Renderer interface {
	Render(ctx context.Context, sourcePath, sceneName string, fps int) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps Manim CLI invocations.
type Client struct {
	binary  string
	quality string
	timeout time.Duration
	exec    services.Executor
}

// New constructs a Manim client. Quality is one of the single-letter Manim
// quality flags (l, m, h, p, k).
func New(binary, quality string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("manim binary required")
	}
	quality = strings.TrimSpace(quality)
	if quality == "" {
		quality = "l"
	}
	client := &Client{
		binary:  binary,
		quality: quality,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    services.CommandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Render invokes Manim to produce one PNG per animation frame for the given
// scene. Output lands in Manim's media tree relative to the working
// directory; callers resolve the frame directory themselves.
func (c *Client) Render(ctx context.Context, sourcePath, sceneName string, fps int) error {
	if strings.TrimSpace(sourcePath) == "" {
		return errors.New("source path required")
	}
	if strings.TrimSpace(sceneName) == "" {
		return errors.New("scene name required")
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive (got %d)", fps)
	}

	renderCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{
		"-q" + c.quality,
		"--fps", strconv.Itoa(fps),
		"--format=png",
		"--silent",
		sourcePath,
		sceneName,
	}
	if err := c.exec.Run(renderCtx, c.binary, args, nil); err != nil {
		return services.Wrap(services.ErrExternalTool, "manim", "render", fmt.Sprintf("scene %s", sceneName), err)
	}
	return nil
}
