// internal/component/element.go
package component

import "strings"

// Element определяет поведение атаки союзника и его идентичность при слиянии.
// Порядок констант фиксирован: Basic < Slow < Aoe < Dot < Critical.
// Он используется только для канонической сборки гибридов.
type Element int

const (
	NoElement Element = iota
	Basic
	Slow
	Aoe
	Dot
	Critical
)

// Elements lists every real element in ascending order.
var Elements = []Element{Basic, Slow, Aoe, Dot, Critical}

func (e Element) String() string {
	switch e {
	case Basic:
		return "basic"
	case Slow:
		return "slow"
	case Aoe:
		return "aoe"
	case Dot:
		return "dot"
	case Critical:
		return "critical"
	default:
		return "none"
	}
}

// Valid reports whether e is one of the five real elements.
func (e Element) Valid() bool {
	return e >= Basic && e <= Critical
}

// Index returns the zero-based position of e in Elements, or -1.
func (e Element) Index() int {
	if !e.Valid() {
		return -1
	}
	return int(e - Basic)
}

// ParseElement accepts the lower-case names used in tuning files.
func ParseElement(s string) (Element, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, e := range Elements {
		if e.String() == name {
			return e, true
		}
	}
	return NoElement, false
}
