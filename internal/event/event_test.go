package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveStarted, a)
	d.Subscribe(WaveStarted, b)
	d.Subscribe(EnemyKilled, a)

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Wave: 1}})
	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Gold: 5}})
	d.Dispatch(Event{Type: AllWavesCompleted})

	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 1)
	assert.Equal(t, 5, a.got[1].Data.(EnemyKilledData).Gold)

	d.Unsubscribe(WaveStarted, a)
	d.Dispatch(Event{Type: WaveStarted})
	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 2)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(WaveCompleted, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: WaveCompleted})
	assert.Equal(t, 1, calls)
}
