// Package mcp exposes the fundflow planner to MCP clients.
//
// The tools are stateless: each call receives the answers it needs and
// returns the computed plan, budget or category. No advisor is consulted.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fundflow"
	"github.com/aretw0/fundflow/internal/presentation/graph"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/planner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FlowURI is the resource serving the interview diagram.
const FlowURI = "fundflow://flow"

// planArgs maps tool argument names to answer keys.
var planArgs = map[string]domain.AnswerKey{
	"goal":     domain.AnswerGoal,
	"timeline": domain.AnswerTimeline,
	"revenue":  domain.AnswerCashflow,
	"expenses": domain.AnswerExpenses,
	"savings":  domain.AnswerSavings,
	"funding":  domain.AnswerFunding,
}

// PlanResponse is the structured result of compute_plan.
type PlanResponse struct {
	Feasible         bool               `json:"feasible" jsonschema_description:"Whether savings cover the goal within the timeline"`
	Category         planner.Category   `json:"category"`
	Budget           string             `json:"budget" jsonschema_description:"Estimated budget, formatted in rupees"`
	AdditionalNeeded string             `json:"additional_needed"`
	MonthlySavings   string             `json:"monthly_savings"`
	MonthsToSave     string             `json:"months_to_save"`
	Risks            []string           `json:"risks,omitempty"`
	Defaulted        []domain.AnswerKey `json:"defaulted,omitempty" jsonschema_description:"Answers replaced by defaults because they were missing or unparseable"`
	Markdown         string             `json:"markdown" jsonschema_description:"The plan as shown in the chat"`
}

// BudgetResponse is the structured result of estimate_budget.
type BudgetResponse struct {
	Category  planner.Category `json:"category"`
	Amount    string           `json:"amount"`
	Headcount int              `json:"headcount,omitempty"`
}

// ClassifyResponse is the structured result of classify_goal.
type ClassifyResponse struct {
	Category        planner.Category `json:"category"`
	Advice          []string         `json:"advice"`
	RevenueStrategy string           `json:"revenue_strategy"`
}

// Server wraps the planner and exposes it as an MCP Server.
type Server struct {
	flow      *domain.Flow
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. flow backs the diagram resource.
func NewServer(flow *domain.Flow, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		flow:      flow,
		logger:    logger,
		mcpServer: server.NewMCPServer("fundflow-mcp", fundflow.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over SSE on addr until ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("compute_plan",
		mcp.WithDescription("Compute a financial feasibility plan for a business goal. Amounts may include ₹ and thousands separators."),
		mcp.WithString("goal", mcp.Required(), mcp.Description("Business goal, e.g. 'hire 2 staff'")),
		mcp.WithString("timeline", mcp.Description("Months to reach the goal")),
		mcp.WithString("revenue", mcp.Description("Average monthly revenue")),
		mcp.WithString("expenses", mcp.Description("Average monthly expenses")),
		mcp.WithString("savings", mcp.Description("Current business savings")),
		mcp.WithString("funding", mcp.Description("self-funded, loan or external")),
		mcp.WithOutputSchema[PlanResponse](),
	), mcp.NewStructuredToolHandler(s.handleComputePlan))

	s.mcpServer.AddTool(mcp.NewTool("estimate_budget",
		mcp.WithDescription("Estimate the budget a business goal needs."),
		mcp.WithString("goal", mcp.Required(), mcp.Description("Business goal")),
		mcp.WithOutputSchema[BudgetResponse](),
	), mcp.NewStructuredToolHandler(s.handleEstimateBudget))

	s.mcpServer.AddTool(mcp.NewTool("classify_goal",
		mcp.WithDescription("Classify a business goal and return goal-specific advice."),
		mcp.WithString("goal", mcp.Required(), mcp.Description("Business goal")),
		mcp.WithOutputSchema[ClassifyResponse](),
	), mcp.NewStructuredToolHandler(s.handleClassifyGoal))
}

func goalArg(args map[string]interface{}) (string, error) {
	goal, _ := args["goal"].(string)
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return "", errors.New("goal is required")
	}
	return goal, nil
}

func (s *Server) handleComputePlan(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlanResponse, error) {
	if _, err := goalArg(args); err != nil {
		return PlanResponse{}, err
	}

	answers := domain.NewAnswers()
	for name, key := range planArgs {
		if v, ok := args[name].(string); ok && v != "" {
			answers.Set(key, v)
		}
	}

	res := planner.Build(answers)
	plan := res.Value()
	resp := PlanResponse{
		Feasible:         plan.Feasible,
		Category:         plan.Budget.Category,
		Budget:           planner.FormatMoney(plan.Budget.Amount),
		AdditionalNeeded: planner.FormatMoney(plan.AdditionalNeeded),
		MonthlySavings:   planner.FormatMoney(plan.MonthlySavingsCapacity),
		MonthsToSave:     plan.MonthsToSave.String(),
		Risks:            plan.Risks,
		Markdown:         plan.Markdown(),
	}

	var pd *domain.ParseDegradation
	if errors.As(res.Cause(), &pd) {
		resp.Defaulted = pd.Fields
		s.logger.Debug("compute_plan applied defaults", "fields", pd.Fields)
	}
	return resp, nil
}

func (s *Server) handleEstimateBudget(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BudgetResponse, error) {
	goal, err := goalArg(args)
	if err != nil {
		return BudgetResponse{}, err
	}
	est := planner.EstimateBudget(goal)
	return BudgetResponse{
		Category:  est.Category,
		Amount:    planner.FormatMoney(est.Amount),
		Headcount: est.Headcount,
	}, nil
}

func (s *Server) handleClassifyGoal(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ClassifyResponse, error) {
	goal, err := goalArg(args)
	if err != nil {
		return ClassifyResponse{}, err
	}
	cat := planner.Classify(goal)
	return ClassifyResponse{
		Category:        cat,
		Advice:          planner.GoalAdvice(cat),
		RevenueStrategy: planner.RevenueStrategy(goal),
	}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(FlowURI, "Interview Flow",
		mcp.WithResourceDescription("Mermaid diagram of the interview states and transitions"),
		mcp.WithMIMEType("text/plain"),
	), s.readFlow)
}

func (s *Server) readFlow(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if s.flow == nil {
		return nil, fmt.Errorf("no flow configured")
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      FlowURI,
			MIMEType: "text/plain",
			Text:     graph.GenerateMermaid(s.flow, nil),
		},
	}, nil
}
