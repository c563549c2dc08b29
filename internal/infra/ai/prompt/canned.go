package prompt

import "github.com/bryanwahyu/seedcheck/internal/domain/report"

// DemoResult returns the deterministic fallback report: a realistic startup
// that "Needs Work". Every call returns a fresh copy tagged ModeDemo.
func DemoResult() *report.AnalysisResult {
	return &report.AnalysisResult{
		OverallScore: 62,
		Label:        report.LabelNeedsWork,
		Mode:         report.ModeDemo,
		Dimensions: []report.DimensionScore{
			{
				Name:     report.DimensionNarrative,
				Score:    18,
				MaxScore: report.MaxDimensionScore,
				Summary:  "Your 'why now' is strong, but your problem framing is too abstract. Investors will want to see specific customer pain quantified in dollars or time lost.",
				WhatsWorking: []string{
					"Problem is specific and relatable; investors can immediately understand the pain point",
					"Solution approach is clearly differentiated from incumbents",
					"Long-term vision is ambitious but grounded in a real market need",
				},
				WhatsMissing: []string{
					"No clear explanation of why this problem is solvable NOW. Add the market timing insight",
					"Problem framing lacks hard numbers. Quantify the cost of the status quo in dollars or hours",
					"Missing a crisp one-sentence value proposition that a VC could repeat to their partners",
				},
				PriorityFix:  "Add a 'Why Now' slide to your deck that identifies 2-3 specific market shifts (technological, behavioral, or regulatory) that make your solution possible today. This is the #1 thing VCs look for at seed stage.",
				InvestorLens: "An investor would see a founder who understands the problem deeply but hasn't yet articulated the market timing insight that separates great opportunities from good ideas. The vision is there, but the pitch needs a sharper hook: specifically, why this exact moment in time is the window of opportunity.",
			},
			{
				Name:     report.DimensionTraction,
				Score:    16,
				MaxScore: report.MaxDimensionScore,
				Summary:  "Early traction is promising with decent growth trajectory, but key metrics (churn, CAC, LTV) are missing. This will be a concern for data-driven investors.",
				WhatsWorking: []string{
					"Month-over-month growth rate is healthy for seed stage",
					"Have paying customers, not just free users or waitlist signups",
					"Early retention signals are encouraging based on the proof points shared",
				},
				WhatsMissing: []string{
					"Churn rate is not tracked. Start measuring it monthly, even at seed stage",
					"No cohort analysis. Build one showing how your first monthly cohorts retain over time",
					"Customer acquisition cost (CAC) and lifetime value (LTV) are not calculated yet. Even rough estimates help",
					"Growth rate is a single number. Show it as a chart with at least 3 months of data points",
				},
				PriorityFix:  "Start tracking monthly churn immediately and build a simple cohort retention chart showing your first 3-6 monthly cohorts. This is the single most powerful proof point that separates 'growing' from 'growing sustainably.'",
				InvestorLens: "The growth numbers will get attention in a partner meeting, but a sophisticated seed investor will immediately ask about retention and unit economics. Not having churn data doesn't kill the deal, but it raises a yellow flag about analytical rigor. At minimum, know your numbers, even if they're early and imperfect.",
			},
			{
				Name:     report.DimensionMarket,
				Score:    14,
				MaxScore: report.MaxDimensionScore,
				Summary:  "Market sizing is top-down and lacks bottom-up validation. The wedge strategy is clear, but the expansion path needs more concrete reasoning.",
				WhatsWorking: []string{
					"TAM is large enough to be interesting for seed investors (venture-scale opportunity)",
					"Initial target customer segment is well-defined and reachable",
					"There is a clear wedge product that serves a specific, acute need",
				},
				WhatsMissing: []string{
					"Market sizing is purely top-down. Add a bottom-up calculation: [# of target customers] x [ACV] = addressable market",
					"Expansion path from wedge to larger market is vague. Spell out how you go from segment A to segment B",
					"No competitive landscape analysis. Map who else is attacking this space",
					"Defensibility thesis is underdeveloped. Explain what prevents a well-funded competitor from copying your approach",
				},
				PriorityFix:  "Build a bottom-up TAM calculation. Count the actual number of companies or people in your target segment, multiply by your annual contract value. This is 10x more credible than citing a Gartner report. Example: '47,000 DTC brands on Shopify doing $1-10M revenue x $1,200/year ACV = $56M initial addressable market.'",
				InvestorLens: "Investors will push back hard on a top-down-only TAM. The number itself matters less than the methodology: a smaller but well-reasoned bottom-up number is more convincing than a $50B top-down number pulled from an analyst report. The expansion story also needs work. Show a logical sequence, not a wish list.",
			},
			{
				Name:     report.DimensionTeam,
				Score:    14,
				MaxScore: report.MaxDimensionScore,
				Summary:  "Founding team has relevant experience, but the fundraise narrative needs significantly more specificity. Vague use-of-funds is one of the most common seed-stage mistakes.",
				WhatsWorking: []string{
					"Founders have domain expertise relevant to the problem they're solving",
					"Team is technical and can build the core product without outsourcing",
					"Prior startup or relevant industry experience adds credibility",
				},
				WhatsMissing: []string{
					"No clear 'founder-market fit' story. Write down why THIS team is uniquely positioned to win",
					"Use of funds breakdown is too vague. Tie specific allocations to outcomes",
					"12-18 month milestones are not tied to specific, measurable targets. Attach revenue, customer and product numbers",
					"Missing context on what happens if you DON'T hit your milestones. Add a contingency plan",
				},
				PriorityFix:  "Rewrite your use-of-funds section with specific allocations and tie each one to a measurable milestone. Example: '40% engineering ($800K): ship v2 with features X, Y, Z by Q3. 30% go-to-market ($600K): hire first AE, hit 100 paying customers by month 12. 20% ops ($400K): 18 months of runway buffer.' This level of specificity signals capital efficiency and planning rigor.",
				InvestorLens: "At seed stage, investors bet on teams as much as products. The team slide needs to tell a story about WHY these specific founders will win this specific market. Generic bios aren't enough; each founder should have a 'why me' that connects their background to this exact problem. The use-of-funds vagueness is a bigger issue. It suggests the founders haven't thought critically about capital allocation, which is exactly what investors are evaluating.",
			},
		},
		Narrative: "Your startup shows the core ingredients of a compelling seed-stage company: a real problem that people are willing to pay to solve, early traction that suggests product-market fit is emerging, and a technical founding team that can build without heavy outside dependency.\n\n" +
			"However, several gaps need to be addressed before approaching top-tier seed investors. The biggest concern is the disconnect between your growth story and your metrics infrastructure. You're growing, but you can't yet prove that growth is efficient or sustainable because key metrics (churn, CAC, LTV, cohort retention) aren't being tracked. Seed investors are increasingly data-savvy and will expect at least basic unit economics understanding, even if the numbers are early.\n\n" +
			"The second major gap is in your fundraise packaging. Your deck needs three things: (1) a sharper 'Why Now' thesis that identifies the specific market shift creating your window of opportunity, (2) a bottom-up market sizing that shows you deeply understand your customer segment, and (3) a use-of-funds breakdown with specific allocations tied to measurable milestones. These three additions alone would move your readiness score significantly.\n\n" +
			"Bottom line: you're 4-6 weeks of focused work away from being genuinely investor-ready. The traction is there; the packaging and metrics infrastructure need to catch up.",
		TopRecommendations: []string{
			"Start tracking monthly churn rate and build a 3-month cohort retention chart. It is the most important missing proof point",
			"Build a bottom-up TAM calculation using real customer counts and your actual pricing to replace the top-down market sizing",
			"Rewrite your use-of-funds with specific dollar allocations tied to measurable 12-month milestones",
		},
	}
}
