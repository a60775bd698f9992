package xlog

// HandlerFuncs adapts plain functions to the Handler interface. Nil fields
// are skipped.
type HandlerFuncs struct {
	Message   func(t LogType, msg string)
	Exception func(t LogType, format, what string)
}

func (h HandlerFuncs) OnMessage(t LogType, msg string) {
	if h.Message != nil {
		h.Message(t, msg)
	}
}

func (h HandlerFuncs) OnException(t LogType, format, what string) {
	if h.Exception != nil {
		h.Exception(t, format, what)
	}
}
