// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{}
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки. Событие,
// отправленное из обработчика, доставляется сразу, до возврата из внешнего
// Dispatch: цепочка Collision → ZombieHit → ZombieKilled укладывается в один вызов.
type Dispatcher struct {
	listeners map[EventType][]Listener
	sent      map[EventType]int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
		sent:      make(map[EventType]int),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Dispatch рассылает событие. Подписки, добавленные во время рассылки,
// получат только следующие события этого типа.
func (d *Dispatcher) Dispatch(event Event) {
	d.sent[event.Type]++
	listeners := d.listeners[event.Type]
	for i := 0; i < len(listeners); i++ {
		listeners[i].OnEvent(event)
	}
}

// Sent возвращает, сколько раз отправлялось событие данного типа.
func (d *Dispatcher) Sent(eventType EventType) int {
	return d.sent[eventType]
}
