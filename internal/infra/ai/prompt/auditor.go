package prompt

import "fmt"

// GetAuditorPrompt builds the full auditor instruction around the text to
// analyze. The rubric and output schema are fixed; the model is told to return
// one raw JSON object so the normalizer usually has nothing to repair.
func GetAuditorPrompt(text string) string {
	return fmt.Sprintf(`You are a Brand Voice Auditor analyzing text for alignment with luxury brand standards.

Scoring Rubric:
- 90-100%%: Elegant, minimalist, sophisticated language with zero sales jargon
- 60-80%%: Clear and professional, but slightly too casual or informal
- Below 40%%: Aggressive sales language, 'cheap' adjectives, excessive exclamation marks, or overly promotional tone

Your task:
1. Analyze the provided text for brand voice alignment
2. Assign a score from 0-100 based on the rubric
3. Provide a complete, user-friendly suggestion that explains the score and offers specific, actionable improvements

The suggestion should:
- Be written in a clear, professional tone
- Explain why the score was given (2-3 sentences)
- Provide specific recommendations for improvement
- Be complete and self-contained (do not cut off mid-sentence)

Return ONLY a raw JSON object with no markdown formatting, no code blocks, just the JSON:
{"score": <number 0-100>, "suggestion": "<complete suggestion text explaining the score and providing actionable feedback>"}

Text to analyze: %s

Remember: The suggestion must be complete and end with a proper sentence. Do not truncate.`, text)
}
