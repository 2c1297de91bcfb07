// Package render rewrites marker tokens in model output into styled HTML
// fragments for the target publishing platforms.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"

	"ghostwriter/pkg/images"
)

// Article is the terminal artifact of the pipeline.
type Article struct {
	Title string
	HTML  string
}

var (
	titleMarker = regexp.MustCompile(`\[TITLE\](.*?)\[/TITLE\]`)
	h3Marker    = regexp.MustCompile(`\[\[H3\]\](.*?)\[\[/H3\]\]`)
	// plainH3 deliberately does not match restyled headings (<h3 style=...>),
	// which keeps re-rendering a substituted document a no-op.
	plainH3 = regexp.MustCompile(`<h3>(.*?)</h3>`)
	// doubleCTA is the sales-form marker ([[CTA_1]]), singleCTA the narrative
	// one ([CTA_1]). The two variants substitute them differently on purpose.
	doubleCTA = regexp.MustCompile(`\[\[CTA_\d\]\]`)
	singleCTA = regexp.MustCompile(`\[CTA_\d\]`)
)

const infoImageCount = 3

// Renderer runs the marker-substitution pipeline. The rand source is
// injected per renderer so style selection is reproducible under test.
type Renderer struct {
	rng    *rand.Rand
	images images.Lookup
	logger *slog.Logger
}

func NewRenderer(rng *rand.Rand, lookup images.Lookup, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{rng: rng, images: lookup, logger: logger}
}

// NaverSales is the free-text path: [TITLE] markers become styled headings
// and every [[CTA_n]] marker resolves to the same product/link block. The
// disclosure sentence is prepended once.
func (r *Renderer) NaverSales(raw, keyword, product, link string) (Article, error) {
	body := titleMarker.ReplaceAllStringFunc(raw, func(m string) string {
		inner := titleMarker.FindStringSubmatch(m)[1]
		return naverSalesHeading(r.rng, inner)
	})

	cta := naverSalesCTA(product, link)
	body = doubleCTA.ReplaceAllLiteralString(body, cta)
	body = prependDisclosure(body, link)

	return Article{Title: keyword, HTML: body}, nil
}

// NaverInfo is a structured path: parse the JSON payload, restyle [[H3]]
// markers with one independent style draw per occurrence, and fill [IMG_k]
// placeholders from the image lookup.
func (r *Renderer) NaverInfo(ctx context.Context, raw string) (Article, error) {
	data, err := ExtractJSON(raw)
	if err != nil {
		return Article{}, err
	}

	body := h3Marker.ReplaceAllStringFunc(data.Content, func(m string) string {
		inner := h3Marker.FindStringSubmatch(m)[1]
		return naverInfoHeading(r.rng, inner)
	})
	body = r.fillImages(ctx, body, data.ImgQueries)

	return Article{Title: data.Title, HTML: body}, nil
}

// TistoryInfo restyles literal <h3> headings with the premium pool, one
// independent draw per occurrence.
func (r *Renderer) TistoryInfo(raw string) (Article, error) {
	data, err := ExtractJSON(raw)
	if err != nil {
		return Article{}, err
	}

	body := plainH3.ReplaceAllStringFunc(data.Content, func(m string) string {
		inner := plainH3.FindStringSubmatch(m)[1]
		return fmt.Sprintf("<br><h3 style=\"%s\">%s</h3>", tistoryPremiumStyle(r.rng), inner)
	})

	return Article{Title: data.Title, HTML: body}, nil
}

// TistorySales is the narrative variant: h3 headings get the sales pool, and
// each [CTA_n] occurrence gets an independently generated phrase/button
// block. This per-occurrence behavior is intentional and differs from
// NaverSales, which reuses one block per document.
func (r *Renderer) TistorySales(raw, product, link string) (Article, error) {
	data, err := ExtractJSON(raw)
	if err != nil {
		return Article{}, err
	}

	body := plainH3.ReplaceAllStringFunc(data.Content, func(m string) string {
		inner := plainH3.FindStringSubmatch(m)[1]
		return tistorySalesHeading(r.rng, inner)
	})
	body = singleCTA.ReplaceAllStringFunc(body, func(string) string {
		return tistorySalesCTA(r.rng, product, link)
	})
	body = prependDisclosure(body, link)

	return Article{Title: data.Title, HTML: body}, nil
}

// fillImages substitutes [IMG_1]..[IMG_n] with <img> tags looked up from the
// image collaborator. Lookup is best-effort and never fails the pipeline.
func (r *Renderer) fillImages(ctx context.Context, body string, queries []string) string {
	if r.images == nil {
		return body
	}
	count := infoImageCount
	if len(queries) < count {
		count = len(queries)
	}
	for i := 0; i < count; i++ {
		marker := fmt.Sprintf("[IMG_%d]", i+1)
		if !strings.Contains(body, marker) {
			continue
		}
		u := r.images.Search(ctx, queries[i])
		body = strings.ReplaceAll(body, marker, fmt.Sprintf("<img src='%s' style='width:100%%'>", u))
	}
	return body
}

// prependDisclosure adds the affiliate disclosure once; re-rendering an
// already-disclosed document leaves it untouched.
func prependDisclosure(body, link string) string {
	d := Disclosure(link)
	if d == "" || strings.Contains(body, d) {
		return body
	}
	return d + "\n\n" + body
}
