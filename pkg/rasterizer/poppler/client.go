package poppler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/rasterizer"
)

var _ rasterizer.Provider = (*Client)(nil)

// Client renders PDF pages to PNG with poppler's pdftoppm.
type Client struct {
	binary string
	dpi    int

	runner Runner
}

type Option func(*Client)

func WithBinary(binary string) Option {
	return func(c *Client) {
		c.binary = binary
	}
}

func WithDPI(dpi int) Option {
	return func(c *Client) {
		c.dpi = dpi
	}
}

func WithRunner(runner Runner) Option {
	return func(c *Client) {
		c.runner = runner
	}
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		binary: "pdftoppm",
		dpi:    800,

		runner: execRunner{},
	}

	for _, option := range options {
		option(c)
	}

	if c.dpi <= 0 {
		return nil, fmt.Errorf("invalid dpi: %d", c.dpi)
	}

	return c, nil
}

func (c *Client) Rasterize(ctx context.Context, doc document.Document) ([]document.Page, error) {
	tmpDir, err := os.MkdirTemp("", "morfeo-pp-*")

	if err != nil {
		return nil, err
	}

	defer os.RemoveAll(tmpDir)

	input := filepath.Join(tmpDir, "input.pdf")

	if err := os.WriteFile(input, doc.Content, 0o600); err != nil {
		return nil, err
	}

	prefix := filepath.Join(tmpDir, "page")

	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := c.runner.Run(ctx, c.binary, "-r", strconv.Itoa(c.dpi), "-png", input, prefix)

	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", rasterizer.ErrRasterization, doc.Name, truncate(string(errb), 1<<10))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q: no pages rendered", rasterizer.ErrRasterization, doc.Name)
	}

	pages := make([]document.Page, 0, len(matches))

	for i, match := range matches {
		data, err := os.ReadFile(match)

		if err != nil {
			return nil, err
		}

		pages = append(pages, document.Page{
			Number: i + 1,

			Content:     data,
			ContentType: "image/png",
		})
	}

	return pages, nil
}
