// Package bindgen generates typed Go bindings from Ethereum contract ABIs.
//
// Generated code embeds the ABI verbatim and delegates every operation to the
// abibind runtime, so a binding carries no encoding logic of its own.
package bindgen

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"text/template"

	abibind "github.com/branched-services/go-abibind"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/tools/imports"
)

var (
	// ErrEmptyABI indicates the input holds no ABI.
	ErrEmptyABI = errors.New("bindgen: empty abi")

	// ErrInvalidIdentifier indicates a package or type name that is not a valid Go identifier.
	ErrInvalidIdentifier = errors.New("bindgen: invalid identifier")
)

// Config describes one binding to generate.
type Config struct {
	Package string // Go package name of the generated file
	Type    string // exported binding type, e.g. "BedroomNftInterface"
	ABI     []byte // bare ABI array or compiler artifact with an "abi" field
	Source  string // optional, recorded in the file header
}

func (c Config) validate() error {
	if !token.IsIdentifier(c.Package) || c.Package == "_" {
		return fmt.Errorf("%w: package %q", ErrInvalidIdentifier, c.Package)
	}
	if !token.IsIdentifier(c.Type) || !token.IsExported(c.Type) {
		return fmt.Errorf("%w: type %q must be exported", ErrInvalidIdentifier, c.Type)
	}
	return nil
}

// LoadABI extracts the ABI array from data. data is either the array itself
// or an artifact object (solc, hardhat, foundry) carrying it under "abi",
// possibly as a JSON-encoded string.
func LoadABI(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyABI
	}

	switch trimmed[0] {
	case '[':
		return bytes.Clone(trimmed), nil
	case '{':
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return nil, fmt.Errorf("bindgen: decode artifact: %w", err)
		}
		raw := bytes.TrimSpace(artifact.ABI)
		if len(raw) > 0 && raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("bindgen: decode artifact abi: %w", err)
			}
			raw = bytes.TrimSpace([]byte(s))
		}
		if len(raw) == 0 || raw[0] != '[' {
			return nil, fmt.Errorf("%w: artifact has no abi array", ErrEmptyABI)
		}
		return bytes.Clone(raw), nil
	default:
		return nil, fmt.Errorf("bindgen: expected abi array or artifact object, got %q", trimmed[0])
	}
}

// Generate renders the Go source of a binding. The ABI is validated with
// abibind.ParseTable, so a malformed ABI yields an *abibind.MalformedAbiError.
// Output is gofmt-formatted and deterministic.
func Generate(cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	raw, err := LoadABI(cfg.ABI)
	if err != nil {
		return nil, err
	}
	table, err := abibind.ParseTable(raw)
	if err != nil {
		return nil, err
	}

	data := &tmplData{
		Package:  cfg.Package,
		Type:     cfg.Type,
		Source:   cfg.Source,
		InputABI: string(raw),
	}
	fns := table.Functions()
	names := methodNames(fns)
	for i, fn := range fns {
		data.Functions = append(data.Functions, newTmplFunction(fn, names[i]))
	}

	var buf bytes.Buffer
	if err := tmplSource.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("bindgen: render %s: %w", cfg.Type, err)
	}
	code, err := imports.Process("", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("bindgen: format %s: %w\n%s", cfg.Type, err, buf.String())
	}
	return code, nil
}

// paramReserved are identifiers generated methods already use.
var paramReserved = map[string]bool{
	"ctx": true, "value": true, "out": true, "err": true, "call": true, "outstruct": true,
	"abi": true, "abibind": true, "big": true, "bind": true, "common": true,
	"context": true, "sync": true, "types": true,
}

// methodNames picks a Go method name per function. Every name and its
// Pack helper must be unique among the binding's methods, so names that
// collide with Contract, Address, another method or another function's
// Pack helper get a "Method" suffix.
func methodNames(fns []abibind.FunctionDescriptor) []string {
	reserved := map[string]bool{"Contract": true, "Address": true}
	for _, fn := range fns {
		reserved["Pack"+abi.ToCamelCase(fn.Method().Name)] = true
	}

	used := make(map[string]bool)
	names := make([]string, len(fns))
	for i, fn := range fns {
		name := abi.ToCamelCase(fn.Method().Name)
		for reserved[name] || used[name] || used["Pack"+name] {
			name += "Method"
		}
		used[name] = true
		used["Pack"+name] = true
		names[i] = name
	}
	return names
}

func newTmplFunction(fn abibind.FunctionDescriptor, name string) *tmplFunction {
	method := fn.Method()
	sel := fn.Selector()

	f := &tmplFunction{
		Name:      name,
		Signature: fn.Signature(),
		Selector:  hex.EncodeToString(sel[:]),
		Solidity:  method.String(),
		Constant:  fn.IsConstant(),
		Payable:   fn.IsPayable(),
	}

	used := make(map[string]bool)
	for i, arg := range method.Inputs {
		f.Inputs = append(f.Inputs, tmplArg{
			Name: paramName(arg.Name, i, used),
			Type: bindType(arg.Type),
		})
	}
	fields := make(map[string]bool)
	for i, arg := range method.Outputs {
		f.Outputs = append(f.Outputs, tmplArg{
			Name: fieldName(arg.Name, i, fields),
			Type: bindType(arg.Type),
		})
	}
	return f
}

// paramName turns a Solidity parameter name into a Go parameter name,
// e.g. "_designId" -> "designId".
func paramName(raw string, index int, used map[string]bool) string {
	name := strings.Trim(raw, "_")
	if name == "" {
		name = "arg" + strconv.Itoa(index)
	}
	name = decapitalise(abi.ToCamelCase(name))
	if token.IsKeyword(name) || paramReserved[name] {
		name += "Arg"
	}
	if used[name] {
		name = "arg" + strconv.Itoa(index)
	}
	for base, n := name, 1; used[name]; n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	used[name] = true
	return name
}

func fieldName(raw string, index int, used map[string]bool) string {
	name := abi.ToCamelCase(strings.Trim(raw, "_"))
	if name == "" || used[name] {
		name = "Arg" + strconv.Itoa(index)
	}
	for base, n := name, 1; used[name]; n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	used[name] = true
	return name
}

// bindType returns the Go type the abi package unpacks t into.
func bindType(t abi.Type) string {
	switch t.T {
	case abi.BytesTy:
		return "[]byte"
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", t.Size)
	}
	return t.GetType().String()
}

func decapitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// rawString quotes s as a raw string literal when possible.
func rawString(s string) string {
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// joinParams renders "name Type, name Type".
func joinParams(args []tmplArg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + " " + a.Type
	}
	return strings.Join(parts, ", ")
}

// joinArgs renders ", name, name" for appending to a call.
func joinArgs(args []tmplArg) string {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(", ")
		sb.WriteString(a.Name)
	}
	return sb.String()
}

var tmplSource = template.Must(template.New("binding").Funcs(template.FuncMap{
	"decapitalise": decapitalise,
	"rawString":    rawString,
	"params":       joinParams,
	"args":         joinArgs,
}).Parse(tmplSourceGo))
