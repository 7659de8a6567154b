// internal/event/types.go
package event

const (
	GameStarted      EventType = "GameStarted"
	GameEnded        EventType = "GameEnded"
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled" // Data: component.Enemy
	AllyBought       EventType = "AllyBought"  // Data: component.Coord
	AllyMoved        EventType = "AllyMoved"
	AllyMerged       EventType = "AllyMerged" // Data: component.Ally (результат)
	MergeRejected    EventType = "MergeRejected"
	PurchaseRejected EventType = "PurchaseRejected"
)
