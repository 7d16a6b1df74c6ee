package cmds

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/reusee/qsearch/vars"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage(os.Stdout)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (e *Executor) Define(name string, command *Command) {
	names := append([]string{name}, command.Aliases...)
	for _, n := range names {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command: %s", n))
		}
		e.commands[n] = command
	}
}

func (e *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := e.commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		fnType := command.Func.Type()
		callArgs := make([]reflect.Value, 0, fnType.NumIn())
		for i := 0; i < fnType.NumIn(); i++ {
			value, err := parseArg(fnType.In(i), args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if len(args) > 0 {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}

		rets := command.Func.Call(callArgs)
		if len(rets) > 0 {
			if err, ok := rets[0].Interface().(error); ok && err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

func (e *Executor) PrintUsage(w *os.File) {
	names := make([]string, 0, len(e.commands))
	seen := make(map[*Command]bool)
	for name, command := range e.commands {
		if seen[command] {
			continue
		}
		seen[command] = true
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		command := e.commands[name]
		fmt.Fprintf(w, "%s", name)
		for _, alias := range command.Aliases {
			fmt.Fprintf(w, " | %s", alias)
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\n\t%s", command.Description)
		}
		fmt.Fprintf(w, "\n")
	}
}

func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	var zero reflect.Value

	if t.Kind() == reflect.Pointer {
		// pointer parameters are optional
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return zero, err
		}
		return elem.Addr(), nil
	}

	if len(args) == 0 {
		return zero, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]

	ret := reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return zero, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return zero, fmt.Errorf("unsupported parameter type: %v", t)
	}

	return ret, nil
}
