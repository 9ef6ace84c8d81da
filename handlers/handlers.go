package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tomsarry/woyt_sentiment/clients"
	"github.com/tomsarry/woyt_sentiment/models"
	"github.com/tomsarry/woyt_sentiment/sentiment"
	"github.com/tomsarry/woyt_sentiment/utils"
)

// Messages sent back to the frontend
const (
	homeMessage        = "Backend is running!"
	errURLMissing      = "YouTube URL missing"
	errInvalidURL      = "Invalid YouTube URL"
	errCommentsUnavail = "Comments unavailable or API error"
)

// Handler serves the sentiment endpoints. The fetcher and analyzer are
// shared across requests and never mutated.
type Handler struct {
	fetcher  clients.CommentFetcher
	analyzer *sentiment.Analyzer
	log      *slog.Logger
}

// NewHandler creates a Handler
func NewHandler(fetcher clients.CommentFetcher, analyzer *sentiment.Analyzer, log *slog.Logger) *Handler {
	return &Handler{fetcher: fetcher, analyzer: analyzer, log: log}
}

// Home answers the liveness check
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, homeMessage)
}

// AnalyzeYouTube fetches the comments of the video in the request body
// and returns the sentiment of each one, in the order given by the API
func (h *Handler) AnalyzeYouTube(c *gin.Context) {
	var req models.AnalyzeRequest

	// a body that isn't JSON is treated like a missing url
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errURLMissing})
		return
	}

	videoID, ok := utils.ExtractVideoID(req.URL)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidURL})
		return
	}

	comments, err := h.fetcher.FetchComments(c.Request.Context(), videoID)
	if err != nil {
		h.log.Error("Failed to fetch comments",
			slog.String("video_id", videoID),
			slog.String("error", err.Error()))
		_ = c.Error(err)

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   errCommentsUnavail,
			Details: upstreamDetails(err),
		})
		return
	}

	c.JSON(http.StatusOK, h.analyzeComments(comments))
}

// analyzeComments scores every comment, the result is never nil so an
// empty list is encoded as []
func (h *Handler) analyzeComments(comments []string) []models.SentimentResult {
	results := make([]models.SentimentResult, 0, len(comments))

	for _, comment := range comments {
		score, label := h.analyzer.Analyze(comment)
		results = append(results, models.SentimentResult{
			Comment:    comment,
			Sentiment:  label,
			Confidence: score,
		})
	}

	return results
}

// upstreamDetails returns the description of the error the API call failed with
func upstreamDetails(err error) string {
	var upstreamErr *clients.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Err.Error()
	}
	return err.Error()
}
