// Package browser adapts verily's executor to a chromedp-driven browser:
// session lifecycle plus confirm-style wrappers for the controls that are
// flaky in practice (checkboxes, file inputs, eventually-rendered text).
package browser

import (
	"context"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/finchley/verily/logging"
)

type sessionConfig struct {
	headless  bool
	width     int
	height    int
	flags     map[string]any
	logger    zerolog.Logger
	loggerSet bool
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

// WithHeadless toggles headless mode. Defaults to true.
func WithHeadless(headless bool) SessionOption {
	return func(c *sessionConfig) {
		c.headless = headless
	}
}

// WithWindowSize sets the browser window size.
func WithWindowSize(width, height int) SessionOption {
	return func(c *sessionConfig) {
		c.width = width
		c.height = height
	}
}

// WithBrowserFlag passes an extra flag to the browser process.
func WithBrowserFlag(name string, value any) SessionOption {
	return func(c *sessionConfig) {
		if c.flags == nil {
			c.flags = make(map[string]any)
		}
		c.flags[name] = value
	}
}

// WithLogger sets the session logger. Defaults to the "browser" component
// logger.
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
		c.loggerSet = true
	}
}

// Session owns one browser process and tab context. Page console output and
// uncaught exceptions are surfaced into the session log, which is usually
// the fastest way to see why a verification never confirmed.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCtx    context.Context
	allocCancel context.CancelFunc
	log         zerolog.Logger
}

// NewSession allocates a browser and returns a ready session. The browser
// process itself starts lazily on the first Run.
func NewSession(parent context.Context, opts ...SessionOption) *Session {
	if parent == nil {
		parent = context.Background()
	}

	cfg := sessionConfig{
		headless: true,
		width:    1920,
		height:   1080,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.loggerSet {
		cfg.logger = logging.Component("browser")
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(cfg.width, cfg.height),
	)
	for name, value := range cfg.flags {
		allocOpts = append(allocOpts, chromedp.Flag(name, value))
	}

	s := &Session{log: cfg.logger}
	s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(parent, allocOpts...)
	s.ctx, s.cancel = chromedp.NewContext(s.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			s.log.Debug().Msgf(format, args...)
		}),
	)

	chromedp.ListenTarget(s.ctx, func(ev any) {
		switch ev := ev.(type) {
		case *runtime.EventConsoleAPICalled:
			parts := make([]string, 0, len(ev.Args))
			for _, arg := range ev.Args {
				parts = append(parts, string(arg.Value))
			}
			s.log.Debug().Str("type", string(ev.Type)).Strs("args", parts).Msg("page console")
		case *runtime.EventExceptionThrown:
			s.log.Warn().Str("exception", ev.ExceptionDetails.Error()).Msg("page exception")
		}
	})

	return s
}

// Context returns the tab context for use with the adapters in this package.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Run executes chromedp actions against the session's tab.
func (s *Session) Run(actions ...chromedp.Action) error {
	return chromedp.Run(s.ctx, actions...)
}

// Navigate loads url and waits for the page to be ready.
func (s *Session) Navigate(url string) error {
	s.log.Debug().Str("url", url).Msg("navigate")
	return s.Run(chromedp.Navigate(url))
}

// Screenshot captures the current viewport as PNG bytes.
func (s *Session) Screenshot() ([]byte, error) {
	var buf []byte
	if err := s.Run(chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close tears down the tab and the browser process.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.allocCancel != nil {
		s.allocCancel()
	}
}
