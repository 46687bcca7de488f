package translation

import (
	"context"
	"strings"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

// phrases maps lowercased English terms to their translations by target
// language.
var phrases = map[string]map[string]string{
	"algorithm":        {"de": "Algorithmus", "es": "Algoritmo"},
	"api":              {"de": "API", "es": "API"},
	"cloud computing":  {"de": "Cloud Computing", "es": "Computación en la nube"},
	"database":         {"de": "Datenbank", "es": "Base de datos"},
	"encryption":       {"de": "Verschlüsselung", "es": "Cifrado"},
	"firewall":         {"de": "Firewall", "es": "Cortafuegos"},
	"interface":        {"de": "Schnittstelle", "es": "Interfaz"},
	"protocol":         {"de": "Protokoll", "es": "Protocolo"},
	"server":           {"de": "Server", "es": "Servidor"},
	"virtualization":   {"de": "Virtualisierung", "es": "Virtualización"},
	"roi":              {"de": "Kapitalrendite", "es": "Retorno de inversión"},
	"kpi":              {"de": "Leistungskennzahl", "es": "Indicador clave de rendimiento"},
	"marketing":        {"de": "Marketing", "es": "Mercadotecnia"},
	"strategy":         {"de": "Strategie", "es": "Estrategia"},
	"leadership":       {"de": "Führung", "es": "Liderazgo"},
	"innovation":       {"de": "Innovation", "es": "Innovación"},
	"management":       {"de": "Management", "es": "Gestión"},
	"entrepreneurship": {"de": "Unternehmertum", "es": "Emprendimiento"},
	"finance":          {"de": "Finanzen", "es": "Finanzas"},
	"branding":         {"de": "Markenbildung", "es": "Marca"},
	"hypothesis":       {"de": "Hypothese", "es": "Hipótesis"},
	"experiment":       {"de": "Experiment", "es": "Experimento"},
	"theory":           {"de": "Theorie", "es": "Teoría"},
	"research":         {"de": "Forschung", "es": "Investigación"},
	"analysis":         {"de": "Analyse", "es": "Análisis"},
	"observation":      {"de": "Beobachtung", "es": "Observación"},
	"methodology":      {"de": "Methodik", "es": "Metodología"},
	"data":             {"de": "Daten", "es": "Datos"},
	"conclusion":       {"de": "Schlussfolgerung", "es": "Conclusión"},
	"evidence":         {"de": "Beweis", "es": "Evidencia"},
}

// StaticTranslator looks terms up in a fixed phrase table keyed by the
// lowercased text and the base of the target language. The source language
// only matters when it equals the target.
type StaticTranslator struct {
	table map[string]map[string]string
}

func NewStaticTranslator() *StaticTranslator {
	return &StaticTranslator{table: phrases}
}

// NewStaticTranslatorWith builds a translator over a caller supplied table,
// keyed like the built-in one.
func NewStaticTranslatorWith(table map[string]map[string]string) *StaticTranslator {
	return &StaticTranslator{table: table}
}

func (t *StaticTranslator) Translate(_ context.Context, text, from, to string) (string, bool, error) {
	target := domain.BaseLanguage(to)
	if byLang, ok := t.table[strings.ToLower(strings.TrimSpace(text))]; ok {
		if translated, ok := byLang[target]; ok {
			return translated, true, nil
		}
	}
	if from != "" && domain.BaseLanguage(from) == target {
		return text, true, nil
	}
	return text, false, nil
}

var _ domain.Translator = (*StaticTranslator)(nil)
