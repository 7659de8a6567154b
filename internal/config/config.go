// internal/config/config.go
package config

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	TicksPerSec  = 60
	TickDelta    = 1.0 / TicksPerSec // фиксированный шаг, не измеряется

	GridRows = 3
	GridCols = 7

	// Кадр вокруг сетки союзников: 9x5 клеток, периметр = 24.
	FrameCols  = GridCols + 2
	FrameRows  = GridRows + 2
	PathLength = 24.0

	StartingCoins = 100
	AllyCost      = 10
	KillReward    = 10

	SpawnBatchSize  = 10
	SpawnMaxDelay   = 100 // тиков, включительно
	EnemyHealth     = 100
	EnemySpeed      = 1.0 // единиц пути в секунду
	EnemyStartPoint = 0.0

	SlowDebuffValue    = 1
	SlowDebuffDuration = 1.0
	DotDebuffValue     = 2
	DotDebuffDuration  = 2.0
	SlowBase           = 0.5
	CriticalMultiplier = 2

	EventLogCapacity = 64

	CellSize         = 72
	BoardOffsetX     = 24
	BoardOffsetY     = 48
	PanelWidth       = 260
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	StrokeWidth      = 2.0
	TextLineHeight   = 16
)
