// internal/component/player.go
package component

// Player хранит кошелёк и счётчик уровня игрока.
type Player struct {
	Coins int
	Level int
}
