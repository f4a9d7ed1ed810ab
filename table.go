package abibind

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Mutability is the declared state mutability of a function.
type Mutability string

const (
	Pure       Mutability = "pure"
	View       Mutability = "view"
	NonPayable Mutability = "nonpayable"
	Payable    Mutability = "payable"
)

// Valid reports whether m is one of the four known mutabilities.
func (m Mutability) Valid() bool {
	switch m {
	case Pure, View, NonPayable, Payable:
		return true
	default:
		return false
	}
}

// Param is a single input or output of an ABI entry.
type Param struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	InternalType string  `json:"internalType,omitempty"`
	Components   []Param `json:"components,omitempty"`
	Indexed      bool    `json:"indexed,omitempty"`
}

// FunctionDescriptor describes one callable function of a contract.
// Descriptors are immutable once produced by ParseTable.
type FunctionDescriptor struct {
	Name       string
	Inputs     []Param
	Outputs    []Param
	Mutability Mutability

	signature string
	method    abi.Method
}

// Signature returns the canonical signature, e.g. "transfer(address,uint256)".
func (f FunctionDescriptor) Signature() string {
	return f.signature
}

// Selector returns the 4-byte function selector.
func (f FunctionDescriptor) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], f.method.ID)
	return sel
}

// IsConstant returns true for pure and view functions.
func (f FunctionDescriptor) IsConstant() bool {
	return f.Mutability == Pure || f.Mutability == View
}

// IsPayable returns true if the function accepts value.
func (f FunctionDescriptor) IsPayable() bool {
	return f.Mutability == Payable
}

// Method returns the go-ethereum method backing this descriptor.
func (f FunctionDescriptor) Method() abi.Method {
	return f.method
}

// abiEntry is the JSON shape of a single ABI entry.
type abiEntry struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Inputs          []Param `json:"inputs"`
	Outputs         []Param `json:"outputs"`
	StateMutability string  `json:"stateMutability"`
	Constant        bool    `json:"constant"`
	Payable         bool    `json:"payable"`
	Anonymous       bool    `json:"anonymous"`
}

// Table is a parsed, immutable ABI description.
type Table struct {
	raw        []byte
	functions  []FunctionDescriptor
	abi        abi.ABI
	bySig      map[string]int
	byName     map[string][]int
	bySelector map[[4]byte]int
}

// ParseTable parses and validates a JSON ABI description.
// Functions keep the order in which they are declared.
func ParseTable(raw []byte) (*Table, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &MalformedAbiError{Entry: -1, Err: err}
	}

	t := &Table{
		raw:        bytes.Clone(raw),
		functions:  make([]FunctionDescriptor, 0, len(entries)),
		bySig:      make(map[string]int),
		byName:     make(map[string][]int),
		bySelector: make(map[[4]byte]int),
	}

	for i, rawEntry := range entries {
		var entry abiEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			return nil, &MalformedAbiError{Entry: i, Err: err}
		}

		switch entry.Type {
		case "", "function":
		case "constructor", "event", "error", "fallback", "receive":
			if err := checkParams(entry.Inputs); err != nil {
				return nil, &MalformedAbiError{Entry: i, Name: entry.Name, Err: err}
			}
			continue
		default:
			return nil, &MalformedAbiError{Entry: i, Name: entry.Name, Err: fmt.Errorf("unknown entry type %q", entry.Type)}
		}

		fn, err := newDescriptor(entry)
		if err != nil {
			return nil, &MalformedAbiError{Entry: i, Name: entry.Name, Err: err}
		}
		if _, dup := t.bySig[fn.signature]; dup {
			return nil, &MalformedAbiError{Entry: i, Name: entry.Name, Err: fmt.Errorf("duplicate signature %s", fn.signature)}
		}

		t.bySig[fn.signature] = len(t.functions)
		t.byName[fn.Name] = append(t.byName[fn.Name], len(t.functions))
		t.functions = append(t.functions, fn)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &MalformedAbiError{Entry: -1, Err: err}
	}
	t.abi = parsed

	// go-ethereum renames overloads, so bind methods back by signature.
	methods := make(map[string]abi.Method, len(parsed.Methods))
	for _, m := range parsed.Methods {
		methods[m.Sig] = m
	}
	for i := range t.functions {
		m, ok := methods[t.functions[i].signature]
		if !ok {
			return nil, &MalformedAbiError{Entry: -1, Name: t.functions[i].Name,
				Err: fmt.Errorf("signature %s not resolved", t.functions[i].signature)}
		}
		t.functions[i].method = m
		sel := t.functions[i].Selector()
		if j, clash := t.bySelector[sel]; clash {
			return nil, &MalformedAbiError{Entry: -1, Name: t.functions[i].Name,
				Err: fmt.Errorf("selector 0x%x collides with %s", sel, t.functions[j].signature)}
		}
		t.bySelector[sel] = i
	}

	return t, nil
}

// MustParseTable is like ParseTable but panics on error.
func MustParseTable(raw []byte) *Table {
	t, err := ParseTable(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func newDescriptor(entry abiEntry) (FunctionDescriptor, error) {
	if entry.Name == "" {
		return FunctionDescriptor{}, errors.New("function without name")
	}

	mutability := Mutability(entry.StateMutability)
	if entry.StateMutability == "" {
		switch {
		case entry.Payable:
			mutability = Payable
		case entry.Constant:
			mutability = View
		default:
			mutability = NonPayable
		}
	}
	if !mutability.Valid() {
		return FunctionDescriptor{}, fmt.Errorf("unknown state mutability %q", entry.StateMutability)
	}

	types := make([]string, len(entry.Inputs))
	for i, in := range entry.Inputs {
		typ, err := newType(in)
		if err != nil {
			return FunctionDescriptor{}, fmt.Errorf("input %d: %w", i, err)
		}
		types[i] = typ.String()
	}
	if err := checkParams(entry.Outputs); err != nil {
		return FunctionDescriptor{}, fmt.Errorf("output: %w", err)
	}

	return FunctionDescriptor{
		Name:       entry.Name,
		Inputs:     cloneParams(entry.Inputs),
		Outputs:    cloneParams(entry.Outputs),
		Mutability: mutability,
		signature:  fmt.Sprintf("%s(%s)", entry.Name, strings.Join(types, ",")),
	}, nil
}

func checkParams(params []Param) error {
	for i, p := range params {
		if _, err := newType(p); err != nil {
			return fmt.Errorf("param %d: %w", i, err)
		}
	}
	return nil
}

func newType(p Param) (abi.Type, error) {
	return abi.NewType(p.Type, p.InternalType, toMarshaling(p.Components))
}

func toMarshaling(params []Param) []abi.ArgumentMarshaling {
	if len(params) == 0 {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(params))
	for i, p := range params {
		out[i] = abi.ArgumentMarshaling{
			Name:         p.Name,
			Type:         p.Type,
			InternalType: p.InternalType,
			Components:   toMarshaling(p.Components),
			Indexed:      p.Indexed,
		}
	}
	return out
}

func cloneParams(params []Param) []Param {
	if params == nil {
		return nil
	}
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = p
		out[i].Components = cloneParams(p.Components)
	}
	return out
}

// Raw returns a copy of the JSON the table was parsed from.
func (t *Table) Raw() []byte {
	return bytes.Clone(t.raw)
}

// ABI returns the go-ethereum representation of the table.
// The returned value shares maps with the table and must not be modified.
func (t *Table) ABI() abi.ABI {
	return t.abi
}

// Len returns the number of functions.
func (t *Table) Len() int {
	return len(t.functions)
}

// Functions returns the function descriptors in declaration order.
func (t *Table) Functions() []FunctionDescriptor {
	out := make([]FunctionDescriptor, len(t.functions))
	copy(out, t.functions)
	return out
}

// Lookup resolves a full signature or, when unambiguous, a bare name.
func (t *Table) Lookup(sigOrName string) (FunctionDescriptor, error) {
	key := strings.ReplaceAll(sigOrName, " ", "")
	if strings.Contains(key, "(") {
		if i, ok := t.bySig[key]; ok {
			return t.functions[i], nil
		}
		return FunctionDescriptor{}, &MethodNotFoundError{Method: sigOrName}
	}

	idx := t.byName[key]
	switch len(idx) {
	case 0:
		return FunctionDescriptor{}, &MethodNotFoundError{Method: sigOrName}
	case 1:
		return t.functions[idx[0]], nil
	default:
		candidates := make([]string, len(idx))
		for i, j := range idx {
			candidates[i] = t.functions[j].signature
		}
		return FunctionDescriptor{}, &AmbiguousMethodError{Method: sigOrName, Candidates: candidates}
	}
}

// LookupSelector resolves a 4-byte selector.
func (t *Table) LookupSelector(sel [4]byte) (FunctionDescriptor, bool) {
	i, ok := t.bySelector[sel]
	if !ok {
		return FunctionDescriptor{}, false
	}
	return t.functions[i], true
}

func (t *Table) initialized() bool {
	return t != nil && t.bySig != nil
}
