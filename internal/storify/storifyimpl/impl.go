package storifyimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/fx"

	"storify-import/internal/domain"
	"storify-import/internal/storify"
	"storify-import/pkg/config"
	"storify-import/pkg/logger"
)

// The public Storify API served fixed pages of 30, oldest first.
const pageSize = 30

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type StorifyImpl struct {
	http   *http.Client
	base   string
	strict bool
	logger logger.Logger
}

func New(opts Opts) *StorifyImpl {
	return &StorifyImpl{
		http:   &http.Client{Timeout: opts.Config.Storify.RequestTimeout},
		base:   strings.TrimRight(opts.Config.Storify.APIBase, "/"),
		strict: opts.Config.Storify.StrictPagination,
		logger: opts.Logger.WithComponent("StorifyClient"),
	}
}

var _ storify.Client = (*StorifyImpl)(nil)

type envelope struct {
	Content json.RawMessage `json:"content"`
}

type storiesContent struct {
	Stories []storify.StoryJSON `json:"stories"`
	Stats   struct {
		Stories int `json:"stories"`
	} `json:"stats"`
}

type storyDetailContent struct {
	storify.StoryJSON
	Elements      []storify.ElementJSON `json:"elements"`
	TotalElements int                   `json:"totalElements"`
}

func (c *StorifyImpl) UserStories(ctx context.Context, username string) ([]storify.StoryJSON, error) {
	endpoint := "stories/" + username

	var first storiesContent
	if err := c.fetchPage(ctx, endpoint, 1, &first); err != nil {
		return nil, err
	}

	total := first.Stats.Stories
	if total < len(first.Stories) {
		total = len(first.Stories)
	}

	data := first.Stories
	if total <= pageSize {
		return data, nil
	}

	for page := 2; page <= pageCount(total); page++ {
		var more storiesContent
		if err := c.fetchPage(ctx, endpoint, page, &more); err != nil {
			return nil, err
		}
		if len(more.Stories) == 0 {
			if err := c.emptyPage(endpoint, page); err != nil {
				return nil, err
			}
			continue
		}
		data = append(data, more.Stories...)
	}

	return data, nil
}

func (c *StorifyImpl) StoryDetail(ctx context.Context, username, slug string) (*storify.StoryJSON, []storify.ElementJSON, error) {
	endpoint := "stories/" + username + "/" + slug

	var first storyDetailContent
	if err := c.fetchPage(ctx, endpoint, 1, &first); err != nil {
		return nil, nil, err
	}

	total := first.TotalElements
	if total < len(first.Elements) {
		total = len(first.Elements)
	}

	elements := first.Elements
	if total <= pageSize {
		return &first.StoryJSON, elements, nil
	}

	for page := 2; page <= pageCount(total); page++ {
		var more storyDetailContent
		if err := c.fetchPage(ctx, endpoint, page, &more); err != nil {
			return nil, nil, err
		}
		if len(more.Elements) == 0 {
			if err := c.emptyPage(endpoint, page); err != nil {
				return nil, nil, err
			}
			continue
		}
		elements = append(elements, more.Elements...)
	}

	return &first.StoryJSON, elements, nil
}

// emptyPage decides what to do with a page that reported items but carried
// none. The historical importer skipped such pages silently, which can drop
// data when the API misbehaves mid-merge; strict mode turns it into a hard
// failure.
func (c *StorifyImpl) emptyPage(endpoint string, page int) error {
	if c.strict {
		return fmt.Errorf("storify: page %d of %s returned no items: %w", page, endpoint, domain.ErrDecode)
	}
	c.logger.Warn("Page returned no items, skipping", "endpoint", endpoint, "page", page)
	return nil
}

func (c *StorifyImpl) fetchPage(ctx context.Context, endpoint string, page int, out any) error {
	u, err := url.Parse(c.base + "/" + endpoint)
	if err != nil {
		return fmt.Errorf("storify: bad endpoint %q: %w", endpoint, err)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(pageSize))
	q.Set("direction", "asc")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Join(err, domain.ErrTransport)
	}

	c.logger.Debug("Fetching page", "endpoint", endpoint, "page", page)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(err, domain.ErrTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("storify: unexpected status %d for %s page %d: %w",
			resp.StatusCode, endpoint, page, domain.ErrTransport)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Join(err, domain.ErrDecode)
	}
	if len(env.Content) == 0 {
		return fmt.Errorf("storify: response for %s page %d has no content envelope: %w",
			endpoint, page, domain.ErrDecode)
	}
	if err := json.Unmarshal(env.Content, out); err != nil {
		return errors.Join(err, domain.ErrDecode)
	}

	return nil
}

func pageCount(total int) int {
	return (total + pageSize - 1) / pageSize
}
