package event

// Kind identifies what happened to an entity. Observers switch on the kind
// instead of inspecting the payload type.
type Kind int

const (
	StateChange Kind = iota
	DrawCard
	Toggle
	Click
)

func (k Kind) String() string {
	switch k {
	case StateChange:
		return "statechange"
	case DrawCard:
		return "drawcard"
	case Toggle:
		return "toggle"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// Event carries a kind plus the entity (or payload) it concerns.
type Event struct {
	Kind Kind
	Data any
}

// Observer handles a fired event and reports whether it consumed it.
type Observer interface {
	HandleEvent(e Event) bool
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(e Event) bool

func (f ObserverFunc) HandleEvent(e Event) bool {
	return f(e)
}

// Emitter is the notification half of every domain entity. The zero value is
// ready to use; embed it to make a type observable.
type Emitter struct {
	observers []Observer
}

// AddObserver registers an observer. Observers are notified in registration
// order and are never removed for the lifetime of the entity.
func (em *Emitter) AddObserver(o Observer) {
	em.observers = append(em.observers, o)
}

// Fire notifies every registered observer, in order, and returns true if any
// of them reported the event handled. All observers run regardless of earlier
// results. Handlers may re-enter the emitter (including firing further
// events), so the registration list is snapshotted before iterating.
func (em *Emitter) Fire(e Event) bool {
	observers := em.observers
	handled := false
	for _, o := range observers {
		if o.HandleEvent(e) {
			handled = true
		}
	}
	return handled
}
