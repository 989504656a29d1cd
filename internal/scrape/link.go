package scrape

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"skibulletin/internal/common"
)

// bulletinLinkText is the naming convention for the daily bulletin anchor.
// The page also carries a static non-dated "for professionals" link with the
// same label; the digit check on the anchor text skips it.
const bulletinLinkText = "Tages-News"

// downloadMarkers are href fragments identifying the site's media download
// endpoint.
var downloadMarkers = []string{"media%2Fdownload", "media/download", "r/"}

// LocateBulletinLink finds the first anchor on the page pointing at a dated
// bulletin PDF, resolving relative hrefs against baseURL. A missing link is a
// normal outcome reported through the bool; parse problems fold into it.
func LocateBulletinLink(page []byte, baseURL string) (string, bool) {
	node, err := html.Parse(bytes.NewReader(page))
	if err != nil || node == nil {
		return "", false
	}

	href, ok := firstBulletinAnchor(node)
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(href, "http") {
		href = baseURL + href
	}
	return href, true
}

// firstBulletinAnchor walks the document in order and returns the href of
// the first qualifying anchor.
func firstBulletinAnchor(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
		if href, ok := attr(n, "href"); ok {
			text := strings.TrimSpace(anchorText(n))
			if strings.Contains(text, bulletinLinkText) &&
				common.HasDigit(text) &&
				common.HasAny(href, downloadMarkers...) {
				return href, true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href, ok := firstBulletinAnchor(c); ok {
			return href, true
		}
	}
	return "", false
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// anchorText collects the visible text under an anchor node.
func anchorText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
