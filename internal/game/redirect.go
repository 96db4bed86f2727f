package game

import (
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// Navigator launches the external registration form. The production value is
// SystemBrowser; tests substitute a recorder.
type Navigator func(rawURL string) error

// SystemBrowser opens rawURL in the default desktop browser.
func SystemBrowser(rawURL string) error {
	return browser.OpenURL(rawURL)
}

// cseCode is the one department with its own form.
const cseCode = "CSE"

// redirectURL picks the form template for the department code and appends
// the code as an escaped query parameter. A base that already carries a
// query string gets "&" instead of "?".
func redirectURL(cseBase, generalBase, code string) string {
	base := generalBase
	if code == cseCode {
		base = cseBase
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "department=" + url.QueryEscape(code)
}
