package event

import (
	"reflect"
	"testing"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	kills, all := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.SubscribeAll(all)

	count := 0
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { count++ }))

	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyKilled})

	if !reflect.DeepEqual(kills.got, []EventType{EnemyKilled, EnemyKilled}) {
		t.Errorf("typed listener got %v", kills.got)
	}
	if len(all.got) != 3 {
		t.Errorf("catch-all listener got %v", all.got)
	}
	if count != 2 {
		t.Errorf("func listener called %d times", count)
	}
}

func TestLogKeepsNewest(t *testing.T) {
	l := NewLog(3)
	for i := 1; i <= 5; i++ {
		l.OnEvent(Event{Type: AllyBought, Tick: uint64(i)})
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d", l.Len())
	}
	recent := l.Recent(10)
	var ticks []uint64
	for _, e := range recent {
		ticks = append(ticks, e.Tick)
	}
	if !reflect.DeepEqual(ticks, []uint64{3, 4, 5}) {
		t.Errorf("Recent ticks = %v", ticks)
	}
	if got := l.Recent(1); got[0].Tick != 5 {
		t.Errorf("Recent(1) = %+v", got)
	}
}

func TestLogLines(t *testing.T) {
	l := NewLog(4)
	l.OnEvent(Event{Type: GameStarted, Tick: 0})
	l.OnEvent(Event{Type: EnemyKilled, Tick: 12, Message: "enemy down"})
	lines := l.Lines(5)
	want := []string{"[    0] GameStarted", "[   12] enemy down"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Lines = %q", lines)
	}
}
