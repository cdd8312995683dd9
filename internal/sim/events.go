package sim

type EventType int

const (
	EventWeatherChanged EventType = iota
	EventMounted
	EventDismounted
	EventBump
	EventWantedChanged
	EventMissionOffered
	EventMissionComplete
	EventMissionsExhausted
)

func (t EventType) String() string {
	switch t {
	case EventWeatherChanged:
		return "weather_changed"
	case EventMounted:
		return "mounted"
	case EventDismounted:
		return "dismounted"
	case EventBump:
		return "bump"
	case EventWantedChanged:
		return "wanted_changed"
	case EventMissionOffered:
		return "mission_offered"
	case EventMissionComplete:
		return "mission_complete"
	case EventMissionsExhausted:
		return "missions_exhausted"
	}
	return "unknown"
}

// Event is published during a tick. Fields not meaningful for a type are zero.
type Event struct {
	Type    EventType
	Tick    uint64
	X, Y    float64
	Vehicle VehicleID
	Police  bool
	Value   int // new wanted level, mission id or reward depending on Type
	Weather Weather
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order. Handlers
// observe state; they must not mutate it.
type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}
