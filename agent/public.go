package agent

import (
	"context"
	"fmt"

	"github.com/etnz/riskfolio"
	"github.com/etnz/riskfolio/docs"
	"github.com/etnz/riskfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Loader provides the price table the experts work on.
type Loader func() (*riskfolio.PriceTable, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand the risk and performance figures of his portfolio:
			returns, volatility, Value at Risk, drawdowns and the risk-adjusted ratios.
			Ask the Analyst for the actual numbers, ask the Researcher for market context,
			and explain the figures in plain language.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search for market context.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of financial products and institutions and of
		the latest news about companies, funds and markets.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's price history.
// It can compute the full risk report and explain the terminology.
func NewAnalyst(load Loader) *Expert {
	lib := []Function{newRiskReport(load), topicFn}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has access to the user's price history
		and can compute the full risk and performance report: annualized returns,
		volatility, correlations, Value at Risk, drawdowns, Sharpe, Sortino and Calmar.
		He also knows the exact definition of every figure in the report.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst in charge of the user's portfolio risk report.
				Use the available tools to compute the report and to look up the definition
				of any figure you are unsure about. Never invent numbers, always read them
				from the report. A value shown as 'n/a' is undefined for this data, say so.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func newRiskReport(load Loader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "RiskReport",
			Description: `RiskReport computes the full risk and performance report for the
			user's portfolio: per-asset and portfolio annualized return, volatility and Sharpe,
			correlation and covariance matrices, VaR and CVaR at 95% and 99%, the drawdown
			profile and the Sharpe, Sortino and Calmar ratios.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report with all the risk and performance figures.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "RiskReport"}
			md, err := riskReport(load)
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}
			fresp.Response = map[string]any{"output": md}
			return fresp
		},
	}
}

func riskReport(load Loader) (string, error) {
	table, err := load()
	if err != nil {
		return "", fmt.Errorf("could not load price table: %w", err)
	}
	report, err := riskfolio.Analyze(table, riskfolio.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("could not analyze price table: %w", err)
	}
	return renderer.ReportMarkdown(report), nil
}

var topicFn = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Topic",
		Description: `Topic returns the documentation of one figure of the risk report.
		Available topics: returns, volatility, var, drawdown, ratios. Use '*' for all.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {
					Type:        genai.TypeString,
					Description: "The topic name, or '*' for all topics.",
				},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The markdown documentation for the topic.",
		},
	},
	Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{ID: id, Name: "Topic"}
		topic, ok := args["topic"].(string)
		if !ok {
			fresp.Response = map[string]any{"error": fmt.Sprintf("argument 'topic' is not a string but %T", args["topic"])}
			return fresp
		}
		content, err := docs.GetTopic(topic)
		if err != nil {
			fresp.Response = map[string]any{"error": err.Error()}
			return fresp
		}
		fresp.Response = map[string]any{"output": content}
		return fresp
	},
}
