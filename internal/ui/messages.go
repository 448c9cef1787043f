package ui

// inbox collects the messages story callbacks report while a control is
// being activated. It is shared by pointer so copies of Model see it.
type inbox struct {
	messages []string
}

func (b *inbox) notify(message string) {
	b.messages = append(b.messages, message)
}

// drain returns and clears the collected messages
func (b *inbox) drain() []string {
	out := b.messages
	b.messages = nil
	return out
}
