// internal/component/status_effect.go
package component

// Debuff — эффект с величиной и оставшейся длительностью в секундах.
// Не имеет идентичности вне списка врага, которому принадлежит.
type Debuff struct {
	Value    int
	Cooldown float64
}
