package cmds

// Var defines a command setting a single value, and name+"." resetting it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a boolean command: name sets, "!"+name clears.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines a repeatable command appending each argument.
func Collect[T any](name string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}))
	return &values
}
