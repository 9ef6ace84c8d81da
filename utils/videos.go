package utils

import "regexp"

// videoIDPatterns are tried in order, each captures the 11 character id
var videoIDPatterns = []*regexp.Regexp{
	// youtube.com/watch?v=ID
	regexp.MustCompile(`v=([a-zA-Z0-9_-]{11})`),
	// youtu.be/ID
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	// youtube.com/shorts/ID
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the id of the video the url points to.
// The boolean is false when the url has none of the known shapes.
func ExtractVideoID(videoURL string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		matches := pattern.FindStringSubmatch(videoURL)
		if matches != nil {
			return matches[1], true
		}
	}

	return "", false
}
