package text

import "fmt"

// VariableStorage resolves placeholder names to values.
//
// The set of storages is closed: EmptyStorage for static text and
// *EnumStorage for a fixed, named set of variables. The interface is sealed
// so TextObject can rely on exactly these two behaviors.
type VariableStorage interface {
	// Get returns the value bound to name, if any.
	Get(name string) (Value, bool)
	// SetByName binds value to name. It reports whether name is recognized.
	SetByName(name string, value Value) bool
	// Count returns the number of variable slots.
	Count() int

	sealed()
}

// EmptyStorage is the storage of static text: every lookup misses and
// nothing can be set.
type EmptyStorage struct{}

func (EmptyStorage) Get(string) (Value, bool)     { return Value{}, false }
func (EmptyStorage) SetByName(string, Value) bool { return false }
func (EmptyStorage) Count() int                   { return 0 }
func (EmptyStorage) sealed()                      {}

// VariableSet is a registration table mapping variable names to slot
// indices. Build one per enumerated variable set, typically next to an iota
// enum whose values are the slots:
//
//	type hudVar int
//
//	const (
//		hudScore hudVar = iota
//		hudLives
//	)
//
//	var hudVars = text.NewVariableSet("score", "lives")
type VariableSet struct {
	names []string
	index map[string]int
}

// NewVariableSet creates a table whose slot i is names[i].
// It panics on empty or duplicate names.
func NewVariableSet(names ...string) *VariableSet {
	s := &VariableSet{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			panic(fmt.Sprintf("text: variable %d has an empty name", i))
		}
		if prev, ok := s.index[name]; ok {
			panic(fmt.Sprintf("text: variable %q registered at slots %d and %d", name, prev, i))
		}
		s.names[i] = name
		s.index[name] = i
	}
	return s
}

// Index returns the slot of name.
func (s *VariableSet) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Name returns the name registered at slot.
func (s *VariableSet) Name(slot int) string {
	return s.names[slot]
}

// Names returns the registered names in slot order.
func (s *VariableSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of slots.
func (s *VariableSet) Len() int {
	return len(s.names)
}

// EnumStorage holds one optional value per slot of a VariableSet.
type EnumStorage struct {
	set    *VariableSet
	values []Value
	isSet  []bool
}

// NewEnumStorage creates storage with every slot unset.
func NewEnumStorage(set *VariableSet) *EnumStorage {
	return &EnumStorage{
		set:    set,
		values: make([]Value, set.Len()),
		isSet:  make([]bool, set.Len()),
	}
}

// Set binds value to slot. It panics if slot is out of range.
func (s *EnumStorage) Set(slot int, value Value) {
	s.values[slot] = value
	s.isSet[slot] = true
}

// Slot returns the value at slot, if one was set.
func (s *EnumStorage) Slot(slot int) (Value, bool) {
	return s.values[slot], s.isSet[slot]
}

// Unset clears slot.
func (s *EnumStorage) Unset(slot int) {
	s.values[slot] = Value{}
	s.isSet[slot] = false
}

// Variables returns the name table backing the storage.
func (s *EnumStorage) Variables() *VariableSet {
	return s.set
}

// Get implements VariableStorage.
func (s *EnumStorage) Get(name string) (Value, bool) {
	slot, ok := s.set.Index(name)
	if !ok {
		return Value{}, false
	}
	return s.Slot(slot)
}

// SetByName implements VariableStorage.
func (s *EnumStorage) SetByName(name string, value Value) bool {
	slot, ok := s.set.Index(name)
	if !ok {
		return false
	}
	s.Set(slot, value)
	return true
}

// Count implements VariableStorage.
func (s *EnumStorage) Count() int {
	return s.set.Len()
}

// Clone returns an independent copy sharing the same name table.
func (s *EnumStorage) Clone() *EnumStorage {
	return &EnumStorage{
		set:    s.set,
		values: append([]Value(nil), s.values...),
		isSet:  append([]bool(nil), s.isSet...),
	}
}

func (s *EnumStorage) sealed() {}
