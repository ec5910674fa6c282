package internal

type loxClass struct {
	name    string
	methods map[string]*loxFunction
}

// findMethod returns nil when there is no such method, callers fall
// back to other lookups
func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	return nil
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *loxClass) call(exec *exec, arguments []interface{}) (interface{}, error) {
	instance := newInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).call(exec, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *loxClass) String() string {
	return c.name
}
