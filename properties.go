package tetrabsp

// Properties is an unordered set of property names to values, carrying custom data on Partitions and Walls
// (for example, values exported as glTF extras).
type Properties struct {
	props map[string]*Property
}

// NewProperties returns a new Properties object.
func NewProperties() *Properties {
	return &Properties{map[string]*Property{}}
}

func (props *Properties) Clone() *Properties {
	newProps := NewProperties()
	for k, v := range props.props {
		newProps.Get(k).Set(v.Value)
	}
	return newProps
}

// Clear clears the Properties object of all properties.
func (props *Properties) Clear() {
	props.props = map[string]*Property{}
}

// Remove removes the property specified from the Properties object.
func (props *Properties) Remove(propName string) {
	delete(props.props, propName)
}

// Has returns true if the Properties object has properties by all of the names specified, and false otherwise.
func (props *Properties) Has(propNames ...string) bool {
	for _, t := range propNames {
		if _, exists := props.props[t]; !exists {
			return false
		}
	}
	return true
}

// Get returns the Property associated with the specified property name. If a property with the
// passed name (propName) doesn't exist, Get creates an empty one.
func (props *Properties) Get(propName string) *Property {
	if _, ok := props.props[propName]; !ok {
		props.props[propName] = &Property{}
	}
	return props.props[propName]
}

// Count returns the number of properties.
func (props *Properties) Count() int {
	return len(props.props)
}

// Property represents a single custom value on a Partition or Wall.
type Property struct {
	Value interface{}
}

// Set sets the property's value to the given value.
func (prop *Property) Set(value interface{}) {
	prop.Value = value
}

// IsBool returns true if the Property is a boolean value.
func (prop *Property) IsBool() bool {
	_, ok := prop.Value.(bool)
	return ok
}

// AsBool returns the value associated with the Property as a bool, or false if it isn't one.
func (prop *Property) AsBool() bool {
	b, _ := prop.Value.(bool)
	return b
}

// IsString returns true if the Property is a string.
func (prop *Property) IsString() bool {
	_, ok := prop.Value.(string)
	return ok
}

// AsString returns the value associated with the Property as a string, or an empty string if it isn't one.
func (prop *Property) AsString() string {
	s, _ := prop.Value.(string)
	return s
}

// IsFloat64 returns true if the Property is a float64.
func (prop *Property) IsFloat64() bool {
	_, ok := prop.Value.(float64)
	return ok
}

// AsFloat64 returns the value associated with the Property as a float64, or 0 if it isn't one.
func (prop *Property) AsFloat64() float64 {
	f, _ := prop.Value.(float64)
	return f
}

// IsStrings returns true if the Property is a list made only of strings.
func (prop *Property) IsStrings() bool {
	switch list := prop.Value.(type) {
	case []string:
		return true
	case []interface{}:
		for _, v := range list {
			if _, ok := v.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}

// AsStrings returns the value associated with the Property as a list of strings. Values in the list that
// aren't strings are skipped.
func (prop *Property) AsStrings() []string {
	switch list := prop.Value.(type) {
	case []string:
		return list
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
