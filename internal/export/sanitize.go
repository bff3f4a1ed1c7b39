package export

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy

	// inlineProperties are the properties the layouts and templates emit in
	// style attributes. Anything else is dropped.
	inlineProperties = []string{
		"align-items", "background", "background-color", "border", "border-bottom",
		"border-left", "border-radius", "color", "display", "flex", "flex-direction",
		"font-family", "font-size", "font-style", "font-weight", "height",
		"justify-content", "letter-spacing", "margin", "margin-bottom", "margin-left",
		"max-width", "min-height", "opacity", "overflow", "padding", "padding-bottom",
		"padding-left", "text-align", "text-transform", "transform", "transform-origin",
		"width",
	}

	styleValueChars = regexp.MustCompile(`^[a-z0-9#%.,\s()/*+-]*$`)
	styleFunctions  = regexp.MustCompile(`([a-z-]*)\s*\(`)
	allowedFuncs    = map[string]bool{
		"rgb": true, "rgba": true, "hsl": true, "hsla": true, "calc": true, "scale": true,
	}
)

// Sanitize strips anything from a rendered body that is not part of the
// resume markup vocabulary.
func Sanitize(body string) string {
	return bodySanitizer().Sanitize(body)
}

// safeStyleValue admits plain lengths, colors and keywords plus a handful of
// functions. url(), image-set(), expression() and escapes never pass, so the
// PDF engine cannot be made to fetch anything.
func safeStyleValue(value string) bool {
	if !styleValueChars.MatchString(value) {
		return false
	}
	for _, m := range styleFunctions.FindAllStringSubmatch(value, -1) {
		if !allowedFuncs[m[1]] {
			return false
		}
	}
	return true
}

func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"div", "span", "section", "header", "p", "h1", "h2", "h3", "h4",
			"ul", "li", "strong", "em", "br",
		)
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
		policy.AllowAttrs("id").Matching(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)).Globally()
		policy.AllowStyles(inlineProperties...).MatchingHandler(safeStyleValue).Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs("alt").OnElements("img")
		policy.AllowAttrs("src").OnElements("img")
		policy.AllowDataURIImages()

		bodyPolicy = policy
	})
	return bodyPolicy
}
