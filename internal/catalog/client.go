package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

var (
	ErrMalformedResponse = errors.New("catalog: malformed response")
	ErrNotFound          = errors.New("catalog: not found")
)

// errEmptyBody is what fakestoreapi answers for unknown ids: 200 with no payload.
var errEmptyBody = errors.New("catalog: empty body")

const maxBodyBytes = 8 << 20

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: GET %s returned %d", e.Path, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	Name    string
	BaseURL *url.URL
	HTTP    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Name: "catalog", BaseURL: u, HTTP: httpClient}, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, "products")
	if err != nil {
		return nil, listErr(err)
	}
	return decodeProducts(body)
}

func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	body, err := c.get(ctx, "products", strconv.Itoa(id))
	if err != nil {
		if errors.Is(err, errEmptyBody) {
			return Product{}, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return Product{}, err
	}
	return decodeProduct(body)
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "products", "categories")
	if err != nil {
		return nil, listErr(err)
	}
	return decodeCategories(body)
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	body, err := c.get(ctx, "products", "category", category)
	if err != nil {
		return nil, listErr(err)
	}
	return decodeProducts(body)
}

// LoadSnapshot fetches products and categories concurrently. Either failure fails the load.
func (c *Client) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := c.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		snap.Products = products
		return nil
	})
	g.Go(func() error {
		categories, err := c.ListCategories(gctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		snap.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (c *Client) get(ctx context.Context, elem ...string) ([]byte, error) {
	escaped := make([]string, len(elem))
	for i, e := range elem {
		escaped[i] = url.PathEscape(e)
	}
	u := c.BaseURL.JoinPath(escaped...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, &StatusError{Path: u.Path, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", c.Name, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errEmptyBody
	}
	return trimmed, nil
}

func listErr(err error) error {
	if errors.Is(err, errEmptyBody) {
		return fmt.Errorf("%w: empty list body", ErrMalformedResponse)
	}
	return err
}
