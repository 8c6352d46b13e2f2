package webview

import (
	webview "github.com/webview/webview_go"
)

type WebView = webview.WebView

type Hint = webview.Hint

// HintMin specifies that width and height are minimum bounds
const HintMin = webview.HintMin

// New creates a new webview in a new window.
func New(debug bool) WebView {
	return webview.New(debug)
}
