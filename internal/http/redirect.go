package http

import (
	"net/url"
	"strings"
)

// browserURL wraps a plain https URL in the deep-link scheme of the user's
// preferred mobile browser, so the notification click opens the stream in
// that browser instead of the OS default webview.
func browserURL(browser, target string) string {
	switch browser {
	case "chrome":
		return chromeIntentURL(target)
	case "firefox":
		return "firefox://open-url?url=" + url.QueryEscape(target)
	case "brave":
		return "brave://open-url?url=" + url.QueryEscape(target)
	}
	return target
}

// chromeIntentURL builds an Android intent link targeting Chrome. Falls back
// to the plain URL when the target has no recognizable scheme.
func chromeIntentURL(target string) string {
	rest, ok := strings.CutPrefix(target, "https://")
	if !ok {
		if rest, ok = strings.CutPrefix(target, "http://"); !ok {
			return target
		}
		return "intent://" + rest + "#Intent;scheme=http;package=com.android.chrome;end"
	}
	return "intent://" + rest + "#Intent;scheme=https;package=com.android.chrome;end"
}
