package models

import "github.com/tomsarry/woyt_sentiment/sentiment"

// AnalyzeRequest is the body of POST /analyze-youtube
type AnalyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

// SentimentResult holds the sentiment of a single comment
type SentimentResult struct {
	Comment    string          `json:"comment"`
	Sentiment  sentiment.Label `json:"sentiment"`
	Confidence float64         `json:"confidence"`
}

// ErrorResponse is sent back when the request cannot be served
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
