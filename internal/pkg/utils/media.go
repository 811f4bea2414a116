package utils

import "regexp"

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/embed/([^/?]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtu\.be/([^/?]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/shorts/([^/?]+)`),
}

var twitterPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?twitter\.com/\w+/status/(\d+)`)

// YouTubeVideoID extracts the video id from the usual YouTube URL
// shapes (watch, embed, youtu.be, shorts). Empty string if none match.
func YouTubeVideoID(url string) string {
	for _, pattern := range youtubePatterns {
		if m := pattern.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// TwitterTweetID extracts the tweet id from a twitter.com status URL.
func TwitterTweetID(url string) string {
	if m := twitterPattern.FindStringSubmatch(url); len(m) > 1 {
		return m[1]
	}
	return ""
}
