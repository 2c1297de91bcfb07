package render

import "strings"

// Disclosure returns the legal-disclosure sentence required for monetized
// posts, picked by simple substring match against the affiliate link's
// domain. Empty link means no disclosure.
func Disclosure(link string) string {
	if link == "" {
		return ""
	}
	u := strings.ToLower(link)
	switch {
	case strings.Contains(u, "coupang"):
		return "이 포스팅은 쿠팡 파트너스 활동의 일환으로, 이에 따른 일정액의 수수료를 제공받습니다."
	case strings.Contains(u, "naver"), strings.Contains(u, "smartstore"):
		return "이 포스팅은 네이버 쇼핑커넥트 활동의 일환으로, 판매 발생 시 수수료를 제공받습니다."
	case strings.Contains(u, "oliveyoung"):
		return "이 포스팅은 올리브영 쇼핑 큐레이터 활동의 일환으로, 판매 발생시 수수료를 제공받습니다."
	default:
		return "이 포스팅은 제휴 마케팅 활동의 일환으로 커미션를 받습니다."
	}
}
