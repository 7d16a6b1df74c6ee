package cmds

import (
	"fmt"
	"reflect"
)

// Command wraps a function whose parameters are parsed from the argument
// list. The function may return nothing or a single error.
type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch value.Type().NumOut() {
	case 0:
	case 1:
		if value.Type().Out(0) != errorType {
			panic(fmt.Errorf("return value must be error"))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	return &Command{
		Func: value,
	}
}
