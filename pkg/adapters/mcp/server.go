package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/fleetintake"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/interview"
	"github.com/aretw0/fleetintake/pkg/lexicon"
	"github.com/aretw0/fleetintake/pkg/matcher"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const brandsURI = "fleetintake://brands"

// MatchResponse lists the brands recognized in a free-text answer.
type MatchResponse struct {
	Brands []string `json:"brands" jsonschema_description:"Recognized brands in order of appearance"`
}

// CheckResponse is the verdict on a stored fleet record.
type CheckResponse struct {
	Valid  bool     `json:"valid" jsonschema_description:"True when every count adds up"`
	Reason string   `json:"reason,omitempty" jsonschema_description:"Why the record was rejected"`
	Brands []string `json:"brands,omitempty" jsonschema_description:"Brands found in the record"`
}

// GraphEdge is one transition of the interview, with state names spelled out.
type GraphEdge struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Label      string `json:"label,omitempty"`
	Correction bool   `json:"correction,omitempty"`
}

// Server exposes the stateless parts of the interview as MCP tools: brand
// recognition, record validation and the state graph. Interviews themselves
// are not served.
type Server struct {
	brands    []string
	matcher   *matcher.Matcher
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server over the brand vocabulary.
func NewServer(brands []string, threshold int, logger *slog.Logger) *Server {
	s := &Server{
		brands:    append([]string(nil), brands...),
		matcher:   matcher.New(brands, matcher.WithThreshold(threshold)),
		logger:    logger,
		mcpServer: server.NewMCPServer("fleetintake-mcp", strings.TrimSpace(fleetintake.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio serves on Stdin/Stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	matchTool := mcp.NewTool("match_brands",
		mcp.WithDescription("Find the known truck brands mentioned in a free-text answer. Misspellings are tolerated."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Answer text, e.g. 'two volvos and a mercedez'")),
		mcp.WithOutputSchema[MatchResponse](),
	)
	s.mcpServer.AddTool(matchTool, mcp.NewStructuredToolHandler(s.handleMatchBrands))

	checkTool := mcp.NewTool("check_record",
		mcp.WithDescription("Validate a fleet record in the data file format: model names must be distinct per brand and truck counts must add up."),
		mcp.WithString("record", mcp.Required(), mcp.Description("One JSON record as stored in the data file")),
		mcp.WithOutputSchema[CheckResponse](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheckRecord))

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the interview state graph, including correction edges."),
	), s.handleGetGraph)
}

func (s *Server) handleMatchBrands(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MatchResponse, error) {
	text, _ := args["text"].(string)
	found := s.matcher.Find(text)
	s.logger.Debug("mcp match_brands", "brands", found)
	if found == nil {
		found = []string{}
	}
	return MatchResponse{Brands: found}, nil
}

func (s *Server) handleCheckRecord(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CheckResponse, error) {
	raw, _ := args["record"].(string)

	var dto domain.RecordDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return CheckResponse{}, fmt.Errorf("record is not valid JSON: %w", err)
	}

	record, err := domain.FromDTO(dto, domain.WithModelKey(lexicon.Normalize))
	if err != nil {
		return CheckResponse{Reason: err.Error()}, nil
	}
	resp := CheckResponse{Brands: record.Brands}
	if err := domain.CheckConsistency(record); err != nil {
		var ce *domain.ConsistencyError
		if errors.As(err, &ce) {
			resp.Reason = ce.Reason
		} else {
			resp.Reason = err.Error()
		}
		return resp, nil
	}
	resp.Valid = true
	return resp, nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(graphEdges())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("graph export failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func graphEdges() []GraphEdge {
	edges := interview.Edges()
	out := make([]GraphEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, GraphEdge{From: e.From.String(), To: e.To.String(), Label: e.Label, Correction: e.Correction})
	}
	return out
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(brandsURI, "Known Truck Brands",
		mcp.WithMIMEType("text/plain"),
	), s.readBrands)
}

func (s *Server) readBrands(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      brandsURI,
			MIMEType: "text/plain",
			Text:     strings.Join(s.brands, "\n") + "\n",
		},
	}, nil
}
