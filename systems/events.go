package systems

import "github.com/yohamta/donburi/features/events"

// CollisionOccurred is published once per resolved collision and dispatched
// during the same tick.
var CollisionOccurred = events.NewEventType[Effect]()
