package commands

import "fmt"

type Result struct {
	Message string
}

// Handlers is the action dispatch table; a nil entry means the action is not
// available in the current context.
type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Complete func(TaskArgs) (Result, error)
	Remove   func(TaskArgs) (Result, error)
	Theme    func(ThemeArgs) (Result, error)
	Menu     func() (Result, error)
	Info     func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeComplete:
		if handlers.Complete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Complete(*cmd.Complete)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Remove(*cmd.Remove)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Theme(*cmd.Theme)
	case TypeMenu:
		if handlers.Menu == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Menu()
	case TypeInfo:
		if handlers.Info == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Info()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
