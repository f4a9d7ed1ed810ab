package bindgen

// tmplData is the data needed to render one binding file.
type tmplData struct {
	Package   string
	Type      string
	Source    string
	InputABI  string
	Functions []*tmplFunction
}

// tmplFunction is a table function with its Go names resolved.
type tmplFunction struct {
	Name      string // Go method name, overloads carry a numeric suffix
	Signature string // canonical signature the method dispatches by
	Selector  string // hex, no prefix
	Solidity  string // declaration for the doc comment
	Constant  bool
	Payable   bool
	Inputs    []tmplArg
	Outputs   []tmplArg
}

// Structured reports whether outputs are returned as a struct.
func (f *tmplFunction) Structured() bool {
	return len(f.Outputs) > 1
}

type tmplArg struct {
	Name string
	Type string
}

// tmplSourceGo is the Go source template of a binding.
const tmplSourceGo = `// Code generated by abibind. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import (
	"context"
	"math/big"
	"sync"

	abibind "github.com/branched-services/go-abibind"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// {{.Type}}ABI is the input ABI used to generate the binding from.
const {{.Type}}ABI = {{rawString .InputABI}}

// {{.Type}}MetaData contains all meta data concerning the {{.Type}} contract.
var {{.Type}}MetaData = &bind.MetaData{
	ABI: {{.Type}}ABI,
}

var {{decapitalise .Type}}Table = sync.OnceValue(func() *abibind.Table {
	return abibind.MustParseTable([]byte({{.Type}}ABI))
})

// {{.Type}}Table returns the function table of the {{.Type}} contract.
// All bindings share the same table.
func {{.Type}}Table() *abibind.Table {
	return {{decapitalise .Type}}Table()
}

// New{{.Type}}Interface returns a calldata encoder and decoder for the {{.Type}} contract.
func New{{.Type}}Interface() (*abibind.InterfaceDecoder, error) {
	return abibind.NewInterfaceDecoder({{.Type}}Table())
}

// {{.Type}} is a typed binding around a deployed {{.Type}} contract.
type {{.Type}} struct {
	contract *abibind.Contract
}

// Connect{{.Type}} binds the {{.Type}} contract at address to exec.
// A nil exec yields a binding that can only pack calldata.
func Connect{{.Type}}(address string, exec abibind.ExecutionContext, opts ...abibind.ContractOption) (*{{.Type}}, error) {
	contract, err := abibind.Connect({{.Type}}Table(), address, exec, opts...)
	if err != nil {
		return nil, err
	}
	return &{{.Type}}{contract: contract}, nil
}

// Contract returns the untyped binding.
func (_{{.Type}} *{{.Type}}) Contract() *abibind.Contract {
	return _{{.Type}}.contract
}

// Address returns the contract address.
func (_{{.Type}} *{{.Type}}) Address() common.Address {
	return _{{.Type}}.contract.Address()
}
{{range .Functions}}
{{- if .Structured}}
// {{$.Type}}{{.Name}}Output holds the outputs of {{.Signature}}.
type {{$.Type}}{{.Name}}Output struct {
{{- range .Outputs}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{end}}
{{- if .Constant}}
// {{.Name}} is a free data retrieval call binding the contract method 0x{{.Selector}}.
//
// Solidity: {{.Solidity}}
{{- if .Structured}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(ctx context.Context{{if .Inputs}}, {{params .Inputs}}{{end}}) ({{$.Type}}{{.Name}}Output, error) {
	out, err := _{{$.Type}}.contract.Call(ctx, "{{.Signature}}"{{args .Inputs}})
	outstruct := new({{$.Type}}{{.Name}}Output)
	if err != nil {
		return *outstruct, err
	}
{{- range $i, $o := .Outputs}}
	outstruct.{{$o.Name}} = *abi.ConvertType(out[{{$i}}], new({{$o.Type}})).(*{{$o.Type}})
{{- end}}
	return *outstruct, nil
}
{{- else if .Outputs}}
{{- $out := index .Outputs 0}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(ctx context.Context{{if .Inputs}}, {{params .Inputs}}{{end}}) ({{$out.Type}}, error) {
	out, err := _{{$.Type}}.contract.Call(ctx, "{{.Signature}}"{{args .Inputs}})
	if err != nil {
		return *new({{$out.Type}}), err
	}
	return *abi.ConvertType(out[0], new({{$out.Type}})).(*{{$out.Type}}), nil
}
{{- else}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(ctx context.Context{{if .Inputs}}, {{params .Inputs}}{{end}}) error {
	_, err := _{{$.Type}}.contract.Call(ctx, "{{.Signature}}"{{args .Inputs}})
	return err
}
{{- end}}
{{- else if .Payable}}
// {{.Name}} is a paid mutator transaction binding the contract method 0x{{.Selector}}.
//
// Solidity: {{.Solidity}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(ctx context.Context, value *big.Int{{if .Inputs}}, {{params .Inputs}}{{end}}) (*types.Transaction, error) {
	call, err := _{{$.Type}}.contract.Invoke("{{.Signature}}"{{args .Inputs}})
	if err != nil {
		return nil, err
	}
	return call.WithValue(value).Send(ctx)
}
{{- else}}
// {{.Name}} is a mutator transaction binding the contract method 0x{{.Selector}}.
//
// Solidity: {{.Solidity}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(ctx context.Context{{if .Inputs}}, {{params .Inputs}}{{end}}) (*types.Transaction, error) {
	return _{{$.Type}}.contract.Transact(ctx, "{{.Signature}}"{{args .Inputs}})
}
{{- end}}

// Pack{{.Name}} returns the calldata of {{.Signature}}.
func (_{{$.Type}} *{{$.Type}}) Pack{{.Name}}({{params .Inputs}}) ([]byte, error) {
	return _{{$.Type}}.contract.Interface().EncodeCall("{{.Signature}}"{{args .Inputs}})
}
{{end}}`
