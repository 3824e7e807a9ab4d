// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий. Вызывается из игрового цикла, без блокировок.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события. ListenerFunc отписать нельзя: функции не сравниваются.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, isFunc := listener.(ListenerFunc); isFunc {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписчики, добавленные во время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, listener := range listeners[:len(listeners):len(listeners)] {
		listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{...})
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: t, Data: data})
}
