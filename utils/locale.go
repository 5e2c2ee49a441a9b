// Package utils provides the message catalog, language selection and display
// helpers shared by the todoview packages.
package utils

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SupportedLanguages lists the catalog languages; the first one is the fallback.
var SupportedLanguages = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(SupportedLanguages)

// ptBR holds the Brazilian Portuguese catalog, keyed by the English text.
var ptBR = map[string]string{
	MsgLoadFailed:   "Falha ao carregar as tarefas.",
	MsgCreated:      "Tarefa criada.",
	MsgCreateFailed: "Falha ao criar a tarefa.",
	MsgCompleted:    "Tarefa concluída.",
	MsgReopened:     "Tarefa reaberta.",
	MsgToggleFailed: "Falha ao atualizar a tarefa.",
	MsgDeleted:      "Tarefa excluída.",
	MsgDeleteFailed: "Falha ao excluir a tarefa.",
	LabelReload:     "Recarregar",

	TextHeading:          "Minhas Tarefas",
	TextTitlePlaceholder: "Digite o título da tarefa",
	TextDescPlaceholder:  "Digite a descrição da tarefa",
	TextAdd:              "Adicionar",
	TextFilterAll:        "TODOS",
	TextFilterPending:    "PENDENTES",
	TextFilterCompleted:  "CONCLUÍDOS",
	TextEmpty:            "Nenhuma tarefa.",
	TextLoading:          "Carregando...",
	TextTaskCount:        "%d tarefa(s)",
}

func init() {
	for key, text := range ptBR {
		if err := message.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("register catalog key %q: %v", key, err))
		}
		if err := message.SetString(language.BrazilianPortuguese, key, text); err != nil {
			panic(fmt.Sprintf("register catalog key %q: %v", key, err))
		}
	}
}

// ParseLanguage resolves a language name such as "en" or "pt-BR" to one of
// SupportedLanguages. An empty name selects the fallback language.
func ParseLanguage(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SupportedLanguages[0], nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", name, err)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("unsupported language %q", name)
	}
	return SupportedLanguages[index], nil
}

// NewPrinter returns a printer translating catalog keys into tag.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders a service timestamp as a short date in the order the
// language uses. Unparseable input is returned unchanged.
func FormatDate(raw string, tag language.Tag, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		t = t.In(loc)
		if base, _ := tag.Base(); base.String() == "pt" {
			return t.Format("02/01/2006")
		}
		return t.Format("1/2/2006")
	}
	return raw
}
