// Package classify labels inbound text with an intent, an objection and a
// sentiment using explicit keyword rule tables. Everything here is pure.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Intent is the coarse purpose of an inbound message.
type Intent string

const (
	IntentPricing       Intent = "pricing_inquiry"
	IntentDemo          Intent = "demo_request"
	IntentNotInterested Intent = "not_interested"
	IntentInterested    Intent = "interested"
	IntentGoodbye       Intent = "goodbye"
	IntentGeneral       Intent = "general_inquiry"
)

// Objection is a sales objection category.
type Objection string

const (
	ObjectionPrice       Objection = "price_objection"
	ObjectionAlreadyHave Objection = "already_have_solution"
	ObjectionNoTime      Objection = "no_time"
	ObjectionNeedThink   Objection = "need_to_think"
	ObjectionNotForMe    Objection = "not_for_me"
)

// Rule matches when any keyword in Any is present and every keyword in All
// is present. Keywords are accent-free, lower case, matched on word
// boundaries; a trailing "*" matches a word prefix.
type Rule[C ~string] struct {
	Category C
	Any      []string
	All      []string
}

// IntentRules is evaluated top to bottom; the first match wins.
var IntentRules = []Rule[Intent]{
	{Category: IntentPricing, Any: []string{"preco", "valor", "custa", "quanto custa"}},
	{Category: IntentDemo, Any: []string{"demo", "demonstracao", "teste", "ver"}},
	{Category: IntentNotInterested, Any: []string{"interesse", "quero"}, All: []string{"nao"}},
	{Category: IntentInterested, Any: []string{"sim", "quero", "interessante", "interessado*"}},
	{Category: IntentGoodbye, Any: []string{"obrigad*", "valeu", "tchau"}},
}

// ObjectionRules is evaluated top to bottom; the first match wins.
var ObjectionRules = []Rule[Objection]{
	{Category: ObjectionPrice, Any: []string{"caro", "preco alto", "muito dinheiro"}},
	{Category: ObjectionAlreadyHave, Any: []string{"ja tenho", "ja uso"}},
	{Category: ObjectionNoTime, Any: []string{"nao tenho tempo", "ocupad*"}},
	{Category: ObjectionNeedThink, Any: []string{"preciso pensar", "vou analisar"}},
	{Category: ObjectionNotForMe, Any: []string{"nao e pra mim", "nao e para mim", "nao serve"}},
}

// ClassifyIntent returns the first matching intent, or IntentGeneral.
func ClassifyIntent(text string) Intent {
	if c, ok := firstMatch(IntentRules, Normalize(text)); ok {
		return c
	}
	return IntentGeneral
}

// DetectObjection returns the first matching objection.
func DetectObjection(text string) (Objection, bool) {
	return firstMatch(ObjectionRules, Normalize(text))
}

func firstMatch[C ~string](rules []Rule[C], normalized string) (C, bool) {
	for _, r := range rules {
		if r.matches(normalized) {
			return r.Category, true
		}
	}
	var zero C
	return zero, false
}

func (r Rule[C]) matches(normalized string) bool {
	for _, kw := range r.All {
		if !containsKeyword(normalized, kw) {
			return false
		}
	}
	for _, kw := range r.Any {
		if containsKeyword(normalized, kw) {
			return true
		}
	}
	return false
}

func containsKeyword(normalized, kw string) bool {
	if prefix, ok := strings.CutSuffix(kw, "*"); ok {
		return strings.Contains(normalized, " "+prefix)
	}
	return strings.Contains(normalized, " "+kw+" ")
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases text, strips accents and punctuation and pads it with
// spaces so keywords can be matched on word boundaries.
func Normalize(text string) string {
	folded, _, err := transform.String(accentFolder, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return " " + strings.Join(words, " ") + " "
}
