package codebase

import "strings"

type CompletionKind int

const (
	CompletionKindKeyword CompletionKind = iota
	CompletionKindMission
	CompletionKindVariable
	CompletionKindNamespace
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

var keywordCompletions = []string{
	"ejercito", "global", "var", "mision", "severidad", "estricto",
	"advertencia", "revisar", "ejecutar", "confirmar", "si", "por",
	"defecto", "estrategia", "atacar", "mientras", "retirada", "con",
	"abortar", "avanzar", "afirmativo", "negativo", "nulo",
}

// Completions lists keywords and codebase symbols matching a prefix. An
// empty prefix matches everything.
func (c *Codebase) Completions(prefix string) []CompletionItem {
	var items []CompletionItem

	for _, kw := range keywordCompletions {
		if strings.HasPrefix(kw, prefix) {
			items = append(items, CompletionItem{
				Label:      kw,
				Kind:       CompletionKindKeyword,
				InsertText: kw,
			})
		}
	}

	for _, sym := range c.AllSymbols() {
		if !strings.HasPrefix(sym.Name, prefix) {
			continue
		}
		item := CompletionItem{
			Label:      sym.Name,
			Detail:     sym.File,
			InsertText: sym.Name,
		}
		switch sym.Kind {
		case SymbolMission:
			item.Kind = CompletionKindMission
			item.Detail = missionSignature(sym)
			item.InsertText = missionInsert(sym)
		case SymbolGlobal:
			item.Kind = CompletionKindVariable
		case SymbolNamespace:
			item.Kind = CompletionKindNamespace
		}
		items = append(items, item)
	}

	return items
}

func missionSignature(sym Symbol) string {
	return "mision " + sym.Name + "(" + strings.Join(sym.Parameters, ", ") + ")"
}

// missionInsert builds a snippet with one tab stop per parameter.
func missionInsert(sym Symbol) string {
	if len(sym.Parameters) == 0 {
		return sym.Name + "()"
	}
	var placeholders []string
	for i, p := range sym.Parameters {
		placeholders = append(placeholders, "${"+itoa(i+1)+":"+p+"}")
	}
	return sym.Name + "(" + strings.Join(placeholders, ", ") + ")"
}

func itoa(i int) string {
	return string(rune('0' + i))
}
