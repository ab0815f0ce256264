// Package chat classifies chat input and dispatches it to OCR or to the
// category lookup.
package chat

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/catalog"
	"github.com/hyperjump/hondana/internal/models"
	"github.com/hyperjump/hondana/pkg/utils"
)

// Input is the chat request body. Image carries a base64 payload, with or
// without a data URL prefix.
type Input struct {
	Message string `json:"message,omitempty"`
	Image   string `json:"image,omitempty"`
}

// Reply is the chat response. Type is always "text".
type Reply struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ItemLister resolves a category name to its items.
type ItemLister interface {
	CategoryItems(ctx context.Context, category string) ([]models.Item, error)
}

// Fixed user-facing replies. Collaborator failures never surface as HTTP
// errors; they become one of these.
const (
	ocrFailureText     = "Sorry, I could not read any text from that image."
	lookupFailureText  = "Sorry, I could not find anything for that category."
	notImplementedText = "Sorry, I cannot help with that yet."
)

// maxOCRReplyChars bounds how much recognized text is echoed into one reply.
const maxOCRReplyChars = 2000

// Router classifies one chat turn and produces a text reply.
type Router struct {
	recognizer Recognizer
	items      ItemLister
	logger     *zap.Logger
}

// NewRouter creates a chat router. recognizer may be nil when no OCR
// endpoint is configured; image input then gets the fixed failure reply.
func NewRouter(recognizer Recognizer, items ItemLister, logger *zap.Logger) *Router {
	return &Router{recognizer: recognizer, items: items, logger: logger}
}

// Route handles one chat turn. An image wins over a message when both are
// present. At least one of the two must be supplied.
func (r *Router) Route(ctx context.Context, in Input) (*Reply, error) {
	switch {
	case in.Image != "":
		return r.routeImage(ctx, in.Image), nil
	case in.Message != "":
		return r.routeMessage(ctx, in.Message), nil
	}
	return nil, fmt.Errorf("%w: message or image is required", catalog.ErrInvalidArgument)
}

func (r *Router) routeImage(ctx context.Context, payload string) *Reply {
	if r.recognizer == nil {
		r.logger.Warn("image received but no OCR recognizer is configured")
		return &Reply{Type: "text", Text: ocrFailureText}
	}
	text, err := r.recognizer.Recognize(ctx, decodeImage(payload))
	if err != nil {
		r.logger.Warn("ocr failed", zap.Error(err))
		return &Reply{Type: "text", Text: ocrFailureText}
	}
	return &Reply{Type: "text", Text: fmt.Sprintf("The image says: %s", utils.Truncate(text, maxOCRReplyChars))}
}

func (r *Router) routeMessage(ctx context.Context, message string) *Reply {
	if !strings.Contains(strings.ToLower(message), "category") {
		return &Reply{Type: "text", Text: notImplementedText}
	}
	// Everything after the first token is the category name.
	name := strings.Join(strings.Fields(message)[1:], " ")
	items, err := r.items.CategoryItems(ctx, name)
	if err != nil {
		r.logger.Warn("chat category lookup failed", zap.String("category", name), zap.Error(err))
		return &Reply{Type: "text", Text: lookupFailureText}
	}
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return &Reply{Type: "text", Text: fmt.Sprintf("Here is what I found in %s: %s", name, strings.Join(titles, ", "))}
}

// decodeImage strips an optional data URL prefix and decodes base64.
// Payloads that do not decode are passed through as raw bytes.
func decodeImage(payload string) []byte {
	raw := payload
	if i := strings.Index(raw, ";base64,"); i >= 0 {
		raw = raw[i+len(";base64,"):]
	}
	if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return b
	}
	return []byte(payload)
}
