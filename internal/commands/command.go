package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeComplete Type = "done"
	TypeRemove   Type = "rm"
	TypeTheme    Type = "theme"
	TypeMenu     Type = "menu"
	TypeInfo     Type = "info"
)

var aliases = map[string]Type{
	"complete": TypeComplete,
	"remove":   TypeRemove,
	"del":      TypeRemove,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

// TaskArgs addresses a rendered task by its 1-based position.
type TaskArgs struct {
	Position int
}

// ThemeArgs holds either a literal hue or a 1-based theme button index ("#2").
type ThemeArgs struct {
	Hue    string
	Button int
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Complete *TaskArgs
	Remove   *TaskArgs
	Theme    *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	if alias, ok := aliases[head]; ok {
		head = string(alias)
	}

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, raw[len(parts[0]):])
	case TypeComplete:
		return parseTask(input, TypeComplete, args)
	case TypeRemove:
		return parseTask(input, TypeRemove, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeMenu, TypeInfo:
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, rest string) (Command, error) {
	text := strings.TrimSpace(rest)
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseTask(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", typ)}
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", args[0])}
	}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypeComplete {
		cmd.Complete = &TaskArgs{Position: pos}
	} else {
		cmd.Remove = &TaskArgs{Position: pos}
	}
	return cmd, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires a hue or #button"}
	}
	arg := args[0]
	if strings.HasPrefix(arg, "#") {
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
		if err != nil || n < 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid theme button: %s", arg)}
		}
		return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Button: n}}, nil
	}
	if _, err := strconv.ParseFloat(arg, 64); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid hue: %s", arg)}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Hue: arg}}, nil
}
