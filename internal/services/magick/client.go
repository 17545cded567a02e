package magick

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"proofsheet/internal/services"
)

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

// Client wraps ImageMagick montage invocations. Depending on the installed
// ImageMagick generation the tool is either `magick montage` or a standalone
// `montage` binary.
type Client struct {
	binary  string
	subArgs []string
	exec    services.Executor
}

// Probe locates a usable montage command on PATH.
func Probe(opts ...Option) (*Client, error) {
	if path, err := exec.LookPath("magick"); err == nil {
		return newClient(path, []string{"montage"}, opts...), nil
	}
	if path, err := exec.LookPath("montage"); err == nil {
		return newClient(path, nil, opts...), nil
	}
	return nil, services.Wrap(services.ErrUnavailable, "magick", "probe", "ImageMagick not found (magick/montage)", nil)
}

// NewWithBinary constructs a client around an explicit binary, bypassing the
// PATH probe. Used by tests.
func NewWithBinary(binary string, subArgs []string, opts ...Option) *Client {
	return newClient(binary, subArgs, opts...)
}

func newClient(binary string, subArgs []string, opts ...Option) *Client {
	client := &Client{
		binary:  binary,
		subArgs: subArgs,
		exec:    services.CommandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Montage tiles the given images into a cols x rows grid with the provided
// cell geometry, writing the result to outputPath.
func (c *Client) Montage(ctx context.Context, imagePaths []string, cols, rows, cellWidth int, outputPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to montage")
	}
	args := make([]string, 0, len(c.subArgs)+len(imagePaths)+4)
	args = append(args, c.subArgs...)
	args = append(args, imagePaths...)
	args = append(args,
		"-tile", fmt.Sprintf("%dx%d", cols, rows),
		"-geometry", fmt.Sprintf("%dx%d+0+0", cellWidth, cellWidth),
		outputPath,
	)
	if err := c.exec.Run(ctx, c.binary, args, nil); err != nil {
		return services.Wrap(services.ErrExternalTool, "magick", "montage", strings.TrimSpace(outputPath), err)
	}
	return nil
}
