package clients

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// MaxComments is the number of top level comments requested per video
	MaxComments = 50

	commentPart       = "snippet"
	commentTextFormat = "plainText"
)

// UpstreamError wraps every failure of the comment listing call. Network
// errors, quota, auth and disabled comments are not told apart.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "upstream unavailable: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// CommentFetcher lists the top level comments of a video
type CommentFetcher interface {
	FetchComments(ctx context.Context, videoID string) ([]string, error)
}

// YouTubeClient fetches comments through the YouTube Data API v3
type YouTubeClient struct {
	service *youtube.Service
}

// NewYouTubeClient builds the Data API service once for the given key.
// An empty endpoint keeps the library default.
func NewYouTubeClient(ctx context.Context, apiKey string, endpoint string) (*YouTubeClient, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	return &YouTubeClient{service: service}, nil
}

// FetchComments returns the plain text of up to MaxComments top level comments,
// in the order the API returns them. A video without comments yields an empty slice.
func (y *YouTubeClient) FetchComments(ctx context.Context, videoID string) ([]string, error) {
	response, err := y.service.CommentThreads.List([]string{commentPart}).
		VideoId(videoID).
		MaxResults(MaxComments).
		TextFormat(commentTextFormat).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	comments := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		// threads without a top level snippet carry no text to score
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		comments = append(comments, item.Snippet.TopLevelComment.Snippet.TextDisplay)
	}

	return comments, nil
}
