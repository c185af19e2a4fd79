package pipeline

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-research2pdf/internal/fileutil"
)

// RewriteRelativePaths converts relative img[src] and a[href] values in an
// HTML fragment to absolute file:// URLs, so the browser finds report assets
// even though the document is loaded from a temporary file.
//
// Reports live in different directories but are converted as one body, so a
// relative path is tried against each of baseDirs in order; the first
// directory containing the target wins, and the first directory is used when
// none does. Paths escaping their base directory, anchors, URLs and absolute
// paths are left alone. With no baseDirs the HTML is returned unchanged.
func RewriteRelativePaths(htmlContent string, baseDirs ...string) (string, error) {
	if len(baseDirs) == 0 {
		return htmlContent, nil
	}

	dirs := make([]string, 0, len(baseDirs))
	seen := make(map[string]bool, len(baseDirs))
	for _, d := range baseDirs {
		if d == "" {
			continue
		}
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", err
		}
		if !seen[abs] {
			seen[abs] = true
			dirs = append(dirs, abs)
		}
	}
	if len(dirs) == 0 {
		return htmlContent, nil
	}

	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(htmlContent), bodyContext)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n, dirs)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode traverses the tree and rewrites relative paths.
func rewriteNode(n *html.Node, dirs []string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", dirs)
		case atom.A:
			rewriteAttr(n, "href", dirs)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, dirs)
	}
}

// rewriteAttr rewrites a single attribute if it holds a relative path.
func rewriteAttr(n *html.Node, attrName string, dirs []string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}
		if abs, ok := resolveAgainst(attr.Val, dirs); ok {
			n.Attr[i].Val = fileutil.PathToFileURL(abs)
		}
	}
}

// resolveAgainst picks the first dir where p exists, else the first dir
// that contains p lexically.
func resolveAgainst(p string, dirs []string) (string, bool) {
	rel := p
	if u, err := url.Parse(p); err == nil && u.Path != "" {
		rel = u.Path
	}

	var fallback string
	for _, dir := range dirs {
		abs := filepath.Join(dir, filepath.FromSlash(rel))
		if !isPathUnderDir(abs, dir) {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs, true
		}
		if fallback == "" {
			fallback = abs
		}
	}
	return fallback, fallback != ""
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}

	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		// Windows drive letters parse as a one-letter scheme.
		if len(u.Scheme) > 1 {
			return false
		}
	}

	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

// isPathUnderDir checks if absPath is under dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
