package agent

import (
	"context"
	"fmt"

	"github.com/hstanley/networth"
	"github.com/hstanley/networth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// LoadTracker is how the agent reads the user's data. Injected by the
// command layer so the agent does not know about data-file resolution.
type LoadTracker func() (*networth.Tracker, error)

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

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand their personal net worth: where it stands,
			how it is trending, and whether they are on track for their milestones and goal.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Amounts are in pounds sterling.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert that reads the user's net-worth data. Its
// tools surface the same reports the regular commands print.
func NewAnalyst(load LoadTracker) *Expert {
	lib := []Function{
		summaryFunc(load),
		trendFunc(load),
		milestonesFunc(load),
		goalFunc(load),
	}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. They read the user's net-worth data file and can
		report the current summary, the recent trend, milestone progress and the goal
		projection. Ask the Analyst whenever you need the user's actual figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's net-worth data.
				You know how to use the Tools to extract the user's summary, trend,
				milestone and goal reports. All figures come from those tools; never
				invent numbers. The reports are markdown, quote from them directly
				when useful.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// reportFunc builds a no-argument tool that loads the tracker and renders
// one report as markdown.
func reportFunc(name, description string, load LoadTracker, render func(*networth.Tracker) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			t, err := load()
			if err != nil {
				fresp.Response["error"] = fmt.Sprintf("could not load data: %v", err)
				return fresp
			}
			fresp.Response["output"] = render(t)
			return fresp
		},
	}
}

func summaryFunc(load LoadTracker) *Func {
	return reportFunc("Summary",
		`Summary reports the latest snapshot: net worth, total assets and debts,
		liquidity split, category breakdown and the change since the previous snapshot.`,
		load, func(t *networth.Tracker) string {
			current, ok := t.Latest()
			if !ok {
				return "No snapshots recorded yet."
			}
			return renderer.SummaryMarkdown(networth.NewSummaryStats(t, current))
		})
}

func trendFunc(load LoadTracker) *Func {
	return reportFunc("Trend",
		`Trend reports the average monthly net-worth change over the last 3, 6 and
		12 months, where the history covers them.`,
		load, func(t *networth.Tracker) string {
			return renderer.TrendMarkdown(networth.NewTrendReport(t.Snapshots()))
		})
}

func milestonesFunc(load LoadTracker) *Func {
	return reportFunc("Milestones",
		`Milestones reports which net-worth milestones the user has achieved and
		the progress toward the next one.`,
		load, func(t *networth.Tracker) string {
			netWorth := networth.M(0)
			if current, ok := t.Latest(); ok {
				netWorth = current.NetWorth()
			}
			return renderer.MilestonesMarkdown(networth.EvaluateMilestones(netWorth, t.Achieved()))
		})
}

func goalFunc(load LoadTracker) *Func {
	return reportFunc("Goal",
		`Goal reports the user's target net worth and, from the recent trend, an
		estimate of when they will reach it.`,
		load, func(t *networth.Tracker) string {
			netWorth := networth.M(0)
			if current, ok := t.Latest(); ok {
				netWorth = current.NetWorth()
			}
			var goal *networth.Goal
			if g, ok := t.Goal(); ok {
				goal = &g
			}
			trend := networth.NewTrendReport(t.Snapshots())
			return renderer.GoalMarkdown(networth.NewGoalReport(goal, netWorth, trend))
		})
}
