package main

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Desktop user agent; the mobile layout of the site has a different page
// structure than the selectors here expect.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const pageLoadTimeout = 30 * time.Second

// Renderer fetches a fully client-rendered page, blocking until the element
// matching waitFor is present or the page times out. Production code uses
// Browser; tests substitute canned HTML.
type Renderer interface {
	RenderPage(ctx context.Context, url, waitFor string) (string, error)
}

// Browser is a chromedp-backed Renderer. Every RenderPage call runs in its
// own short-lived browser context off one shared exec allocator.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

func NewBrowser(sandboxed bool) *Browser {
	// Chromium options suitable for containers
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.UserAgent(userAgent),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
	)
	if !sandboxed {
		opts = append(opts,
			chromedp.NoSandbox,
			chromedp.Flag("disable-setuid-sandbox", true),
		)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Browser{allocCtx: allocCtx, cancel: cancel}
}

// Close shuts down the Chrome process.
func (b *Browser) Close() {
	b.cancel()
}

func (b *Browser) RenderPage(ctx context.Context, url, waitFor string) (string, error) {
	// Timeout for this specific page
	pageCtx, cancel := context.WithTimeout(b.allocCtx, pageLoadTimeout)
	defer cancel()

	// Fresh browser context from the shared allocator
	tabCtx, tabCancel := chromedp.NewContext(pageCtx)
	defer tabCancel()

	// Tear the tab down early if the caller gives up first
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(waitFor, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return html, nil
}
