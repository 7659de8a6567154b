// internal/component/ally.go
package component

import "strings"

// Ally — союзник, стоящий в клетке сетки.
type Ally struct {
	Element        Element // основная стихия, обязательна
	SecondElement  Element // NoElement, пока союзник не стал гибридом
	Atk            int
	Range          int // в клетках сетки
	AoeRange       int
	Level          int
	AtkSpeed       float64 // период атаки в секундах, несмотря на имя
	AttackCooldown float64 // сколько секунд осталось до готовности, >= 0
	LevelupRatio   float64
	SpecialValue   float64
}

// HasSecond reports whether the ally is a hybrid.
func (a Ally) HasSecond() bool {
	return a.SecondElement != NoElement
}

// Has reports whether either element of the ally is e.
func (a Ally) Has(e Element) bool {
	return a.Element == e || (a.HasSecond() && a.SecondElement == e)
}

// ElementList returns the primary element followed by the secondary one, if any.
func (a Ally) ElementList() []Element {
	if a.HasSecond() {
		return []Element{a.Element, a.SecondElement}
	}
	return []Element{a.Element}
}

var allyNames = map[Element]string{
	Basic:    "Tung Tung Sahur",
	Slow:     "Brr Brr Patapim",
	Aoe:      "Bombardiro Crocodilo",
	Dot:      "Lirili Larila",
	Critical: "Tralalero Tralala",
}

// Name returns the display name. Hybrids join the first word of the primary
// name with the last word of the secondary one.
func (a Ally) Name() string {
	primary, ok := allyNames[a.Element]
	if !ok {
		return "???"
	}
	if !a.HasSecond() {
		return primary
	}
	secondary, ok := allyNames[a.SecondElement]
	if !ok {
		return primary
	}
	first := strings.Fields(primary)[0]
	words := strings.Fields(secondary)
	return first + " " + words[len(words)-1]
}
