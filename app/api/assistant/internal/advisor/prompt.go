package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"BelanjaAI/app/api/assistant/internal/search"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	descriptionLimit = 200

	noProductsLine = "No specific products found, but I can provide general recommendations."
)

var rupiahPrinter = message.NewPrinter(language.English)

// buildContext renders the question, the lookup note and the matched products
// into the textual block the model grounds its answer on.
func buildContext(question, note string, products []search.Product) string {
	var sb strings.Builder
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\n")
	sb.WriteString(note)
	sb.WriteString("\n\n")

	if len(products) == 0 {
		sb.WriteString(noProductsLine)
		return sb.String()
	}

	sb.WriteString("Relevant Products:\n")
	for idx, p := range products {
		sb.WriteString(fmt.Sprintf("%d. %s\n", idx+1, p.Name))
		sb.WriteString(fmt.Sprintf("   Harga: %s\n", formatRupiah(p.Price)))
		sb.WriteString(fmt.Sprintf("   Brand: %s\n", p.Brand))
		sb.WriteString(fmt.Sprintf("   Kategori: %s\n", p.Category))
		sb.WriteString(fmt.Sprintf("   Rating: %s/5\n", formatRating(p.Rating)))
		sb.WriteString(fmt.Sprintf("   Deskripsi: %s\n", truncateDescription(p.Description)))
	}

	return sb.String()
}

func wrapAnswerPrompt(contextBlock string) string {
	return fmt.Sprintf(`You are a friendly product recommendation assistant for an Indonesian electronics store.

%s

Based on the information above, give the customer a clear, concise and helpful answer. Reply in the language the question was asked in.`, contextBlock)
}

// wrapContextPrompt is the legacy single-shot template: same role, no
// question/product framing around the caller-supplied context.
func wrapContextPrompt(contextText string) string {
	return fmt.Sprintf(`You are a friendly product recommendation assistant for an Indonesian electronics store.

Context: %s

Give a clear, concise and helpful answer based on the context above.`, contextText)
}

func formatRupiah(price int64) string {
	return rupiahPrinter.Sprintf("Rp %d", price)
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'g', -1, 64)
}

// truncateDescription keeps the first 200 characters and always appends an
// ellipsis, even when nothing was cut. Slices runes so multi-byte text is
// never split mid-character.
func truncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}
