package botdefense

import (
	"net/http"
	"strings"
)

// minimum score to consider a form post as bot-like
const BotScoreThreshold = 40

// user-agent fragments of scripts and scrapers (case-insensitive)
var botPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"curl",
	"wget",
	"httpie",
	"python-requests",
	"go-http-client",
	"node-fetch",
	"axios",
	"okhttp",
	"headless",
	"phantomjs",
	"selenium",
	"puppeteer",
	"scrapy",
}

var browserIndicators = []string{
	"mozilla",
	"chrome",
	"safari",
	"firefox",
	"edge",
}

// probing fragments that never appear in real site paths
var suspiciousPatterns = []string{
	".php",
	".asp",
	".jsp",
	".cgi",
	"..%2f",
	"../",
	"%00",
	"<script",
	"union+select",
}

// bot indicators found on a request
type Signals struct {
	EmptyUserAgent bool
	PatternMatch   string
	MissingHeaders []string
	Score          int
}

// scores a request; higher means more likely a bot
func Detect(r *http.Request) Signals {
	var s Signals

	ua := strings.ToLower(r.Header.Get("User-Agent"))
	switch {
	case ua == "":
		s.EmptyUserAgent = true
		s.Score += 50
	case len(ua) < 20:
		s.Score += 30
	}

	for _, pattern := range botPatterns {
		if strings.Contains(ua, pattern) {
			s.PatternMatch = pattern
			s.Score += 40
			break
		}
	}

	for _, h := range []string{"Accept", "Accept-Language", "Accept-Encoding"} {
		if r.Header.Get(h) == "" {
			s.MissingHeaders = append(s.MissingHeaders, h)
			s.Score += 10
		}
	}

	if hasBrowserIndicator(ua) && len(s.MissingHeaders) == 0 {
		s.Score = max(0, s.Score-20)
	}

	return s
}

func hasBrowserIndicator(ua string) bool {
	for _, indicator := range browserIndicators {
		if strings.Contains(ua, indicator) {
			return true
		}
	}

	return false
}

// checks if the request path looks like probing
func IsSuspiciousPath(path string) bool {
	lower := strings.ToLower(path)

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	return false
}
