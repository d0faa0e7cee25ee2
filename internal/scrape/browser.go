package scrape

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

// gameFrameSelector is the iframe the game board and log render inside.
const gameFrameSelector = "#game-iframe"

// Fetcher loads game pages in a headless browser.
type Fetcher struct {
	cfg model.Config
	log *zap.Logger
}

// NewFetcher returns a Fetcher using the given config and logger.
func NewFetcher(cfg model.Config, log *zap.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, log: log}
}

// FetchGameHTML navigates to a game URL, waits for the game iframe to
// appear (bounded by the configured timeout), and returns the iframe's
// rendered HTML.
func (f *Fetcher) FetchGameHTML(ctx context.Context, url string) (string, error) {
	l := launcher.New().Headless(f.cfg.Headless)
	if f.cfg.BrowserBin != "" {
		l = l.Bin(f.cfg.BrowserBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connect to browser: %w", err)
	}
	defer func() { _ = browser.Close() }()

	f.log.Info("loading game page", zap.String("url", url))
	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("open game page: %w", err)
	}

	el, err := page.Timeout(f.cfg.WaitTimeout).Element(gameFrameSelector)
	if err != nil {
		return "", fmt.Errorf("wait for game iframe: %w", err)
	}
	frame, err := el.Frame()
	if err != nil {
		return "", fmt.Errorf("enter game iframe: %w", err)
	}
	if err := frame.WaitLoad(); err != nil {
		return "", fmt.Errorf("wait for frame load: %w", err)
	}

	frameHTML, err := frame.HTML()
	if err != nil {
		return "", fmt.Errorf("read frame html: %w", err)
	}
	f.log.Debug("fetched game frame", zap.Int("bytes", len(frameHTML)))
	return frameHTML, nil
}
