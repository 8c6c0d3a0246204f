package verb

// TriggerType tells where a command comes from: a verb matching typed
// input, or a key bound directly to an internal.
type TriggerType interface {
	isTrigger()
}

// InputTriggered is a command whose verb matched the typed invocation.
type InputTriggered struct {
	Verb *Verb
}

// KeyTriggered is a command triggered by a key.
type KeyTriggered struct{}

func (InputTriggered) isTrigger() {}
func (KeyTriggered) isTrigger()   {}
