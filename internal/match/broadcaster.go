package match

type Broadcaster interface {
	Broadcast(code string, event string, data interface{})
}
