package render

import (
	"fmt"
	"math/rand"
	"strings"
)

// Style pools for the two target platforms. Selection is randomized for
// visual variety but always driven by the renderer's injected rand source so
// tests can seed it.

var salesDividers = []string{
	"━━━━━━━━━━━━━━━━━━━━━━━━━━━━",
	"────────────────────────────",
	"◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈◈",
}

// naverSalesHeading renders a [TITLE] marker for the Naver sales variant:
// a random divider line over a fixed-size bold span.
func naverSalesHeading(rng *rand.Rand, text string) string {
	divider := salesDividers[rng.Intn(len(salesDividers))]
	return fmt.Sprintf("\n%s\n<span style=\"font-size: 19px; font-weight: bold; color: #000000;\">📍 %s</span>\n", divider, text)
}

var naverInfoColors = []string{"#1e3a8a", "#065f46", "#b91c1c", "#111827"}

// naverInfoHeading renders an [[H3]] marker for the Naver info variant as a
// colored card-style heading. Each call draws color and border style
// independently.
func naverInfoHeading(rng *rand.Rand, text string) string {
	color := naverInfoColors[rng.Intn(len(naverInfoColors))]
	styles := []string{
		fmt.Sprintf("border-left: 10px solid %s; padding-left: 15px; border-bottom: 1px solid #eee; margin: 40px 0 20px 0;", color),
		fmt.Sprintf("border-top: 4px solid %s; padding: 15px; border-bottom: 1px solid #eee; margin: 40px 0 20px 0;", color),
		fmt.Sprintf("display: inline-block; padding: 5px 15px; border: 2px solid %s; color: %s; border-radius: 20px; margin: 40px 0 20px 0; font-weight: bold;", color, color),
	}
	style := styles[rng.Intn(len(styles))]

	// Underlined variants read better with near-black text.
	fontColor := color
	if strings.Contains(style, "border-bottom") {
		fontColor = "#111"
	}
	return fmt.Sprintf("<h3 style='font-size:22px; font-weight:bold; color:%s; %s'>%s</h3>", fontColor, style, text)
}

// randomHexColor draws a dark-ish color so white page backgrounds keep
// contrast.
func randomHexColor(rng *rand.Rand) string {
	return fmt.Sprintf("#%06x", rng.Intn(0x777777+1))
}

// tistoryPremiumStyle returns an inline style for the Tistory info variant's
// restyled h3 headings.
func tistoryPremiumStyle(rng *rand.Rand) string {
	color := randomHexColor(rng)
	styles := []string{
		fmt.Sprintf("border-left: 15px solid %s; border-bottom: 2px solid %s; padding: 10px 15px; background: #f8f9fa; font-weight: bold;", color, color),
		fmt.Sprintf("background: linear-gradient(to right, %s, white); color: white; padding: 12px 20px; border-radius: 5px; box-shadow: 3px 3px 5px rgba(0,0,0,0.1);", color),
		fmt.Sprintf("border: 2px solid %s; padding: 15px; border-left: 10px solid %s; border-radius: 0 10px 10px 0; background: #ffffff;", color, color),
		fmt.Sprintf("border-top: 1px solid #ddd; border-bottom: 3px double %s; padding: 10px 0; font-size: 1.5em;", color),
	}
	return styles[rng.Intn(len(styles))]
}

// tistorySalesHeading restyles an h3 for the Tistory sales variant.
func tistorySalesHeading(rng *rand.Rand, text string) string {
	color := randomHexColor(rng)
	styles := []string{
		fmt.Sprintf("border-left: 10px solid %s; border-bottom: 2px solid %s; padding: 5px 15px; margin: 40px 0 15px 0; font-weight: bold; font-size: 1.3em; display: block;", color, color),
		fmt.Sprintf("background-color: %s; color: white; padding: 10px 18px; margin: 40px 0 15px 0; font-weight: bold; border-radius: 5px; display: block;", color),
		fmt.Sprintf("border-bottom: 5px double %s; padding-bottom: 8px; margin: 40px 0 15px 0; font-weight: bold; font-size: 1.4em; display: block;", color),
	}
	style := styles[rng.Intn(len(styles))]
	return fmt.Sprintf("<br><h3 style=\"%s\">%s</h3>", style, text)
}

var (
	ctaPhrases = []string{
		"⚠️ 재고 비상! 품절 임박",
		"⏳ 오늘만 이 가격!",
		"🚨 긴급 물량 확보!",
		"⚡ 품절 대란템!",
		"💰 최저가 보장",
	}
	ctaButtons = []string{
		"👉 최저가 확인하기",
		"👉 혜택 적용가 보기",
		"👉 품절 전 선점하기",
	}
)

const ctaBlinkCSS = `<style>
.blink-border { background: #fbf0f6; border: 3px solid red; border-radius: 11px; padding: 18px 16px; margin: 25px 0; animation: blink 1s infinite; }
@keyframes blink { 50% { border-color: transparent; } }
.animate-text { animation: pulse 1s infinite alternate; font-weight: 900; font-size: 1.2em; color:#e60000; }
@keyframes pulse { to { transform: scale(1.05); } }
</style>`

// tistorySalesCTA builds one animated call-to-action block. Phrase and button
// are drawn fresh on every call, so repeated CTA markers in a narrative read
// less mechanical.
func tistorySalesCTA(rng *rand.Rand, product, link string) string {
	phrase := ctaPhrases[rng.Intn(len(ctaPhrases))]
	btn := ctaButtons[rng.Intn(len(ctaButtons))]
	return fmt.Sprintf(`%s
<div class="blink-border"><span class="animate-text">%s</span><br><div style="margin-top: 10px;"><a href="%s" target="_blank" style="color:#1a3d7c; font-weight:bold; font-size:1.1em;">%s (%s)</a></div></div>`,
		ctaBlinkCSS, phrase, link, btn, product)
}

// naverSalesCTA builds the fixed green link span used by the Naver sales
// variant. Deterministic: every CTA marker in a document resolves to the
// same block.
func naverSalesCTA(product, link string) string {
	return fmt.Sprintf(`<span style="color: #00C73C; font-weight: bold;">👉 %s 최저가: %s</span>`, product, link)
}
