// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// State - экран вьюера.
type State interface {
	Name() string
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Переход, запрошенный во время Update,
// выполняется после того, как текущее состояние закончит свой тик.
type StateMachine struct {
	current State
	pending State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState сразу выходит из текущего состояния и входит в next.
func (sm *StateMachine) SetState(next State) {
	from := "none"
	if sm.current != nil {
		from = sm.current.Name()
		sm.current.Exit()
	}
	sm.current = next
	if next == nil {
		return
	}
	log.Printf("StateMachine: %s -> %s", from, next.Name())
	next.Enter()
}

// Request откладывает переход до конца текущего Update. Последний запрос побеждает.
func (sm *StateMachine) Request(next State) {
	sm.pending = next
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.pending != nil {
		next := sm.pending
		sm.pending = nil
		sm.SetState(next)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
