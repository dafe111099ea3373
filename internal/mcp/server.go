// Package mcp provides an MCP (Model Context Protocol) server that exposes
// bkb functionality as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/bookmark-brain/internal/core"
	"github.com/valter-silva-au/bookmark-brain/internal/observability"
	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// Server wraps bkb services and exposes them as MCP tools.
type Server struct {
	server      *gomcp.Server
	classifier  *core.ShapeClassifier
	engine      *core.PromptEngine
	enricher    *core.Enricher
	metricsCalc observability.MetricsCalculator
	alertEngine observability.AlertEngine
}

// NewServer creates a new MCP server with the given bkb service dependencies.
// metricsCalc and alertEngine may be nil if observability is disabled.
func NewServer(classifier *core.ShapeClassifier, engine *core.PromptEngine, enricher *core.Enricher, metricsCalc observability.MetricsCalculator, alertEngine observability.AlertEngine, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		classifier:  classifier,
		engine:      engine,
		enricher:    enricher,
		metricsCalc: metricsCalc,
		alertEngine: alertEngine,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "bkb", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on the given transport, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type classifyInput struct {
	Text     string `json:"text" jsonschema:"required,the bookmark text to classify"`
	HasVideo bool   `json:"has_video,omitempty" jsonschema:"whether the bookmark carries a video attachment"`
	HasImage bool   `json:"has_image,omitempty" jsonschema:"whether the bookmark carries an image attachment"`
	HasLink  bool   `json:"has_link,omitempty" jsonschema:"whether the bookmark carries an external link"`
}

type classifyOutput struct {
	Shape       string `json:"shape"`
	Description string `json:"description"`
}

type buildPromptInput struct {
	Text          string `json:"text" jsonschema:"required,the bookmark text to build an analysis prompt for"`
	Author        string `json:"author,omitempty" jsonschema:"the author handle, without the @ prefix"`
	Likes         int    `json:"likes,omitempty" jsonschema:"the like count at capture time"`
	HasVideo      bool   `json:"has_video,omitempty" jsonschema:"whether the bookmark carries a video attachment"`
	HasImage      bool   `json:"has_image,omitempty" jsonschema:"whether the bookmark carries an image attachment"`
	HasLink       bool   `json:"has_link,omitempty" jsonschema:"whether the bookmark carries an external link"`
	LinkContent   string `json:"link_content,omitempty" jsonschema:"fetched content of the linked page, if available"`
	ImageAnalysis string `json:"image_analysis,omitempty" jsonschema:"prior analysis of the attached image, if available"`
	VideoAnalysis string `json:"video_analysis,omitempty" jsonschema:"prior analysis of the attached video, if available"`
}

type buildPromptOutput struct {
	Shape        string `json:"shape"`
	UserPrompt   string `json:"user_prompt"`
	SystemPrompt string `json:"system_prompt"`
	Output       string `json:"output"`
}

type previewEnrichmentInput struct {
	Title       string `json:"title" jsonschema:"required,the note title"`
	Body        string `json:"body,omitempty" jsonschema:"the note body text"`
	ContentType string `json:"content_type,omitempty" jsonschema:"the note content type (tweet, thread, video, link). Defaults to tweet."`
	Author      string `json:"author,omitempty" jsonschema:"the author handle, without the @ prefix"`
}

type previewEnrichmentOutput struct {
	Topics      []string `json:"topics"`
	Tags        []string `json:"tags"`
	Wikilinks   []string `json:"wikilinks"`
	IndexTarget string   `json:"index_target,omitempty"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	NotesEnriched  int            `json:"notes_enriched"`
	NoTopicMatches int            `json:"no_topic_matches"`
	TopicCounts    map[string]int `json:"topic_counts"`
	ShapeCounts    map[string]int `json:"shape_counts"`
	PromptsBuilt   int            `json:"prompts_built"`
	EventCount     int            `json:"event_count"`
	OldestEvent    string         `json:"oldest_event,omitempty"`
	NewestEvent    string         `json:"newest_event,omitempty"`
}

type getAlertsInput struct{}

type alertOutput struct {
	ID          string `json:"id"`
	Condition   string `json:"condition"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	TriggeredAt string `json:"triggered_at"`
}

type getAlertsOutput struct {
	Alerts []alertOutput `json:"alerts"`
	Count  int           `json:"count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "classify_content",
		Description: "Classify bookmark text into a content shape (top_list, tutorial_guide, video_content, ...). Media flags take part in the decision.",
	}, s.handleClassifyContent)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "build_prompt",
		Description: "Classify bookmark text and build the matching analysis prompt, with author, engagement, and media context filled in.",
	}, s.handleBuildPrompt)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "preview_enrichment",
		Description: "Preview the graph metadata (topics, tags, wikilinks, index target) a note would receive, without writing anything.",
	}, s.handlePreviewEnrichment)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get aggregated metrics from the event log, including enrichment counts, topic frequencies, and shape distribution.",
	}, s.handleGetMetrics)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_alerts",
		Description: "Evaluate and return active rule-quality alerts (low topic coverage, unknown-shape rate, greedy topic patterns).",
	}, s.handleGetAlerts)
}

// --- Tool handlers ---

func (s *Server) handleClassifyContent(_ context.Context, _ *gomcp.CallToolRequest, input classifyInput) (*gomcp.CallToolResult, classifyOutput, error) {
	if input.Text == "" && !input.HasVideo && !input.HasImage && !input.HasLink {
		return errorResult("text is required when no media flags are set"), classifyOutput{}, nil
	}

	shape := s.classifier.Classify(input.Text, input.HasVideo, input.HasImage, input.HasLink)
	out := classifyOutput{
		Shape:       shape.String(),
		Description: shape.Description(),
	}
	return nil, out, nil
}

func (s *Server) handleBuildPrompt(_ context.Context, _ *gomcp.CallToolRequest, input buildPromptInput) (*gomcp.CallToolResult, buildPromptOutput, error) {
	if input.Text == "" && !input.HasVideo && !input.HasImage && !input.HasLink {
		return errorResult("text is required when no media flags are set"), buildPromptOutput{}, nil
	}

	shape, prompt, systemPrompt := s.engine.Build(models.PromptInput{
		Text:          input.Text,
		Author:        input.Author,
		Likes:         input.Likes,
		HasVideo:      input.HasVideo,
		HasImage:      input.HasImage,
		HasLink:       input.HasLink,
		LinkContent:   input.LinkContent,
		ImageAnalysis: input.ImageAnalysis,
		VideoAnalysis: input.VideoAnalysis,
	})

	out := buildPromptOutput{
		Shape:        shape.String(),
		UserPrompt:   prompt,
		SystemPrompt: systemPrompt,
		Output:       s.engine.TemplateFor(shape).OutputDescriptor,
	}
	return nil, out, nil
}

func (s *Server) handlePreviewEnrichment(_ context.Context, _ *gomcp.CallToolRequest, input previewEnrichmentInput) (*gomcp.CallToolResult, previewEnrichmentOutput, error) {
	if input.Title == "" && input.Body == "" {
		return errorResult("title or body is required"), previewEnrichmentOutput{}, nil
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "tweet"
	}

	enrichment := s.enricher.Analyze(input.Title, input.Body, contentType, input.Author)
	out := previewEnrichmentOutput{
		Topics:      enrichment.TopicIDs(),
		Tags:        enrichment.Tags,
		Wikilinks:   enrichment.Links,
		IndexTarget: enrichment.IndexTarget,
	}
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (observability may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		NotesEnriched:  metrics.NotesEnriched,
		NoTopicMatches: metrics.NoTopicMatches,
		TopicCounts:    metrics.TopicCounts,
		ShapeCounts:    metrics.ShapeCounts,
		PromptsBuilt:   metrics.PromptsBuilt,
		EventCount:     metrics.EventCount,
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

func (s *Server) handleGetAlerts(_ context.Context, _ *gomcp.CallToolRequest, _ getAlertsInput) (*gomcp.CallToolResult, getAlertsOutput, error) {
	if s.alertEngine == nil {
		return errorResult("alert engine not available (observability may be disabled)"), getAlertsOutput{}, nil
	}

	alerts, err := s.alertEngine.Evaluate()
	if err != nil {
		return errorResult(fmt.Sprintf("evaluating alerts: %s", err)), getAlertsOutput{}, nil
	}

	out := getAlertsOutput{
		Alerts: make([]alertOutput, len(alerts)),
		Count:  len(alerts),
	}
	for i, a := range alerts {
		out.Alerts[i] = alertOutput{
			ID:          a.ID,
			Condition:   a.Condition,
			Severity:    string(a.Severity),
			Message:     a.Message,
			TriggeredAt: a.TriggeredAt.Format(time.RFC3339),
		}
	}

	return nil, out, nil
}

// --- Helpers ---

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{
		TopicCounts: make(map[string]int),
		ShapeCounts: make(map[string]int),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d", "30d", or "24h"
// into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
