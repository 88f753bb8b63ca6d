package repository

import (
	"strings"
)

const analysisSystemPrompt = "You are an expert Financial Analyst Assistant specializing in trade policy impacts. Base all summaries and analysis strictly on the provided text. Do not invent information or provide external financial advice."

// analysisPrompt builds the two-part instruction the segmenter depends on:
// the completion must open the sentiment section with the literal
// "**Part 2:" heading.
func analysisPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert Financial Analyst Assistant specializing in trade policy impacts. Analyze the following news text regarding tariffs.\n\n")

	sb.WriteString(`**Part 1: Summarize the Tariff News**
Extract and summarize the key information using concise bullet points under these headings:
*   **Tariff Action(s):** [Specific tariffs mentioned, rates, status like proposed/implemented]
*   **Countries/Regions Involved:** [List countries/blocs imposing or targeted by tariffs]
*   **Affected Industries/Products:** [List specific sectors or goods mentioned]
*   **Stated Economic Impacts/Consequences:** [Summarize any effects mentioned in the text, e.g., price increases, retaliation, supply chain disruption]

**Part 2: Investment Sentiment Outlook (Illustrative)**
Based *only* on the impacts and information presented *in this text*, analyze the potential short-term investment sentiment outlook for the primary Industries/Products identified above.
*   **Overall Sentiment:** [Classify as: Positive, Negative, Neutral, or Mixed/Uncertain]
*   **Justification:** [Provide a brief (1-2 sentence) explanation for the sentiment classification, referencing specific points from the text.]
*   **Affected Sectors Mentioned:** [Re-list the key sectors identified]

**Constraint:** Base all summaries and analysis strictly on the provided text. Do not invent information or provide external financial advice. The Sentiment Outlook is illustrative of potential market reaction based solely on this news snippet. Begin the second section with the literal heading "**Part 2:".
`)

	sb.WriteString("\nNews Text:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"")

	return sb.String()
}
