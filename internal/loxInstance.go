package internal

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func newInstance(class *loxClass) *loxInstance {
	return &loxInstance{
		class:  class,
		fields: make(map[string]interface{}),
	}
}

// get looks at the fields first, so a field shadows a method
func (o *loxInstance) get(name *token) (interface{}, error) {
	if val, ok := o.fields[name.lexeme]; ok {
		return val, nil
	}
	if method := o.class.findMethod(name.lexeme); method != nil {
		return method.bind(o), nil
	}
	return nil, newRuntimeErrorf(name, errUndefinedProp, "%s '%s'.", errUndefinedProp.Error(), name.lexeme)
}

func (o *loxInstance) set(name *token, value interface{}) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return o.class.name + " instance"
}
