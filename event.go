package bubblechart

// EventKind identifies a kind of pointer event.
type EventKind uint8

const (
	EventMouseMove  EventKind = iota // pointer moved with no button held
	EventMouseDown                   // a button was pressed
	EventMouseUp                     // a button was released
	EventClick                       // press then release without dragging
	EventDoubleClick                 // second click within the double-click window
	EventWheel                       // scroll wheel moved
	EventDragStart                   // movement with a button held exceeded the dead zone
	EventDrag                        // each frame while dragging
	EventDragEnd                     // release after dragging
	EventMouseLeave                  // pointer left the chart surface
)

func (k EventKind) String() string {
	switch k {
	case EventMouseMove:
		return "MouseMove"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventClick:
		return "Click"
	case EventDoubleClick:
		return "DoubleClick"
	case EventWheel:
		return "Wheel"
	case EventDragStart:
		return "DragStart"
	case EventDrag:
		return "Drag"
	case EventDragEnd:
		return "DragEnd"
	case EventMouseLeave:
		return "MouseLeave"
	default:
		return "Unknown"
	}
}

// Event carries pointer data through the control tree. Handlers mutate the
// flags: Cancel stops delivery to controls painted underneath, Reflow and
// Repaint ask the owner to relayout or redraw once dispatch finishes.
type Event struct {
	Kind      EventKind
	X, Y      float64
	StartX    float64 // press position, valid for drag events
	StartY    float64
	DeltaX    float64 // movement since the previous drag event
	DeltaY    float64
	WheelY    float64
	Button    MouseButton
	Modifiers KeyModifiers

	Cancel  bool
	Reflow  bool
	Repaint bool
}

// HandlerFunc handles one event.
type HandlerFunc func(e *Event)

// Handlers is the per-control table of event callbacks. A nil entry means the
// control ignores that kind of event.
type Handlers struct {
	OnMouseMove   HandlerFunc
	OnMouseDown   HandlerFunc
	OnMouseUp     HandlerFunc
	OnClick       HandlerFunc
	OnDoubleClick HandlerFunc
	OnWheel       HandlerFunc
	OnDragStart   HandlerFunc
	OnDrag        HandlerFunc
	OnDragEnd     HandlerFunc
	OnMouseLeave  HandlerFunc
}

// handlerFor maps an event kind to its callback.
func (h *Handlers) handlerFor(k EventKind) HandlerFunc {
	switch k {
	case EventMouseMove:
		return h.OnMouseMove
	case EventMouseDown:
		return h.OnMouseDown
	case EventMouseUp:
		return h.OnMouseUp
	case EventClick:
		return h.OnClick
	case EventDoubleClick:
		return h.OnDoubleClick
	case EventWheel:
		return h.OnWheel
	case EventDragStart:
		return h.OnDragStart
	case EventDrag:
		return h.OnDrag
	case EventDragEnd:
		return h.OnDragEnd
	case EventMouseLeave:
		return h.OnMouseLeave
	}
	return nil
}

// --- Signals ---

type signalHandler[T any] struct {
	id uint32
	fn func(T)
}

// Signal is a synchronous observer list. Handlers run in subscription order;
// a panicking handler is not isolated from the ones after it.
type Signal[T any] struct {
	handlers []signalHandler[T]
	nextID   uint32
}

// Subscription allows removing a handler registered on a Signal.
type Subscription struct {
	remove func()
}

// Remove unregisters the handler. Safe to call more than once.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

// Subscribe registers fn and returns a handle to remove it.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, signalHandler[T]{id: id, fn: fn})
	return Subscription{remove: func() { s.unsubscribe(id) }}
}

func (s *Signal[T]) unsubscribe(id uint32) {
	for i := range s.handlers {
		if s.handlers[i].id == id {
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = signalHandler[T]{}
			s.handlers = s.handlers[:len(s.handlers)-1]
			return
		}
	}
}

// Emit calls every handler with v.
func (s *Signal[T]) Emit(v T) {
	for _, h := range s.handlers {
		h.fn(v)
	}
}

// Len returns the number of subscribed handlers.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}
