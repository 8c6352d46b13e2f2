package service

import (
	"log/slog"
	"sync"

	"github.com/trapdata/companion/internal/config"
	"github.com/trapdata/companion/internal/webview"
)

const greetingScript = `alert("Hello from the desktop app!")`

type WebViewService struct {
	newWindow func(debug bool) webview.WebView
	logger    *slog.Logger

	title  string
	width  int
	height int
	debug  bool

	mu         sync.Mutex
	mainWindow webview.WebView
	closed     bool
}

func NewWebViewService(cfg *config.Config, logger *slog.Logger) *WebViewService {
	return &WebViewService{
		newWindow: webview.New,
		logger:    logger,
		title:     cfg.Title,
		width:     cfg.Width,
		height:    cfg.Height,
		debug:     cfg.Debug,
	}
}

// Run opens the main window on url and blocks until it is closed.
func (s *WebViewService) Run(url string) {
	w := s.newWindow(s.debug)
	defer w.Destroy()

	w.SetTitle(s.title)
	w.SetSize(s.width, s.height, webview.HintMin)
	w.Navigate(url)
	w.Dispatch(func() {
		w.Eval(greetingScript)
	})

	s.mu.Lock()
	s.mainWindow = w
	if s.closed {
		w.Dispatch(w.Terminate)
	}
	s.mu.Unlock()

	s.logger.Info("window opened", "url", url)
	w.Run()

	s.mu.Lock()
	s.mainWindow = nil
	s.mu.Unlock()
}

// Close ends the main window's event loop. Run returns afterwards, or
// right away if it has not opened the window yet.
func (s *WebViewService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.mainWindow == nil {
		return
	}

	s.mainWindow.Dispatch(s.mainWindow.Terminate)
}
