package ai

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kissandost/backend/internal/i18n"
	"github.com/kissandost/backend/internal/model/market"
)

const basePersona = `You are Kissan Dost, a Master-Level Agriculture AI Advisor for farmers in Pakistan.
Your goal is to provide accurate, actionable, and low-literacy friendly advice.

Core Rules:
1. ALWAYS reply in the language the user is currently using or explicitly requested.
2. Be concise, encouraging, and respectful. Use "Brother farmer" (Kissan bhai) often.
3. Simplify scientific terms. Instead of "Nitrogen deficiency", say "Lack of growth power (Urea needed)".
4. Provide step-by-step instructions for remedies.
5. Include estimated costs in PKR if possible based on general knowledge.`

// BuildSystemInstruction assembles the advisor persona, the current
// market/weather grounding data, and an explicit language directive.
func BuildSystemInstruction(rates []market.Rate, alerts []market.Alert, lang i18n.Language) string {
	var b strings.Builder
	b.WriteString(basePersona)
	b.WriteString("\n\nContext Data (Use this to ground your answers):\n")
	writeContextJSON(&b, rates)
	b.WriteString("\n")
	writeContextJSON(&b, alerts)
	b.WriteString("\n\n")
	b.WriteString(languageDirective(lang))
	return b.String()
}

func writeContextJSON(b *strings.Builder, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ai] failed to marshal prompt context: %v", err)
		return
	}
	b.Write(data)
}

func languageDirective(lang i18n.Language) string {
	return fmt.Sprintf("IMPORTANT: Please respond in %s.", lang.Name())
}
