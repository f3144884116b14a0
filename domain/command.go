package domain

// InstantiateCommand creates the registry configuration.
// A nil Owner makes the instantiating caller the owner.
type InstantiateCommand struct {
	Owner *string
}

// ExecuteCommand is a state-changing request. The set of variants is closed:
// only types in this package implement it.
type ExecuteCommand interface {
	Action() string
	executeCommand()
}

type AddWriterCommand struct {
	Writer string
}

type RemoveWriterCommand struct {
	Writer string
}

type RegisterMessageCommand struct {
	Content string
}

func (AddWriterCommand) Action() string       { return ActionAddWriter }
func (RemoveWriterCommand) Action() string    { return ActionRemoveWriter }
func (RegisterMessageCommand) Action() string { return ActionRegisterMessage }

func (AddWriterCommand) executeCommand()       {}
func (RemoveWriterCommand) executeCommand()    {}
func (RegisterMessageCommand) executeCommand() {}

// Query is a read-only request, open to any caller.
type Query interface {
	queryName() string
}

type GetMessageQuery struct {
	Writer string
}

type GetWritersQuery struct{}

func (GetMessageQuery) queryName() string { return "get_message" }
func (GetWritersQuery) queryName() string { return "get_writers" }

// QueryName returns the wire name of q, used in logs.
func QueryName(q Query) string {
	if q == nil {
		return ""
	}
	return q.queryName()
}
