package app

// Command is one decoded invocation: Add, List, Done or Delete.
type Command interface {
	isCommand()
}

// Add appends a new task.
type Add struct {
	Description string
}

// List prints every task.
type List struct{}

// Done marks a task completed.
type Done struct {
	ID int
}

// Delete removes a task and renumbers the rest.
type Delete struct {
	ID int
}

func (Add) isCommand()    {}
func (List) isCommand()   {}
func (Done) isCommand()   {}
func (Delete) isCommand() {}
