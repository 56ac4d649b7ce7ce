package simplify

import "fmt"

func explainPrompt(text string, level Level) string {
	switch level {
	case Detailed:
		return fmt.Sprintf(`You are explaining business news to a high school student.

Original news: %s

Your task: Explain in 3-4 sentences using simple but informative language.

Rules:
- You can use basic business terms BUT explain them quickly
- Make it educational but easy to follow
- Connect it to real-world impact

Example:
"The company announced strong quarterly results. This means they made more money than expected in the last 3 months. Their market cap (total company value) increased. Investors are happy because the company is growing well."

Your explanation:`, text)

	case Expert:
		return fmt.Sprintf(`You are explaining business news to a college business student.

Original news: %s

Your task: Explain in 3-4 sentences with business context.

Rules:
- Use proper financial terms
- Explain the business implications
- Mention impact on stakeholders

Your explanation:`, text)

	default:
		return fmt.Sprintf(`You are explaining news to someone who knows NOTHING about business or finance.

Original news: %s

Your task: Explain what happened in 2-3 SHORT, SIMPLE sentences.

Rules:
- Use words a 10-year-old can understand
- NO business jargon (no "revenue", "market cap", "IPO", etc.)
- Focus on WHAT happened and WHY it matters to regular people
- Make it conversational and friendly

Example:
If news says "Company's market cap surged after quarterly earnings beat estimates"
You explain: "The company did better than expected this month. More people wanted to buy their shares. Now the company is worth more money."

Now explain this news in simple words:`, text)
	}
}

func termsPrompt(text string) string {
	return fmt.Sprintf(`From this financial text, identify 3-5 important financial terms and explain each in ONE simple sentence.

Text: %s

Format your response EXACTLY like this:
1. Term: Simple one-sentence explanation
2. Term: Simple one-sentence explanation

Your response:`, text)
}
