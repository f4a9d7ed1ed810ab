package abibind

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseTable(t *testing.T) {
	t.Run("keeps declaration order", func(t *testing.T) {
		table := bedroomTable(t)

		if table.Len() != 2 {
			t.Fatalf("Expected 2 functions, got %d", table.Len())
		}
		fns := table.Functions()
		if fns[0].Name != "mintingBedroomNft" {
			t.Errorf("Expected first function mintingBedroomNft, got %s", fns[0].Name)
		}
		if fns[1].Name != "upgradeBedroomNft" {
			t.Errorf("Expected second function upgradeBedroomNft, got %s", fns[1].Name)
		}
	})

	t.Run("raw is byte identical", func(t *testing.T) {
		table := bedroomTable(t)

		if !bytes.Equal(table.Raw(), []byte(bedroomABIJSON)) {
			t.Error("Expected Raw() to equal the input JSON")
		}
	})

	t.Run("raw returns a copy", func(t *testing.T) {
		table := bedroomTable(t)

		raw := table.Raw()
		raw[0] = 'x'
		if table.Raw()[0] != '[' {
			t.Error("Expected table to be unaffected by modifying Raw() result")
		}
	})

	t.Run("functions returns a copy", func(t *testing.T) {
		table := bedroomTable(t)

		fns := table.Functions()
		fns[0].Name = "changed"
		if table.Functions()[0].Name != "mintingBedroomNft" {
			t.Error("Expected table to be unaffected by modifying Functions() result")
		}
	})

	t.Run("descriptor fields", func(t *testing.T) {
		fn := bedroomTable(t).Functions()[0]

		if fn.Signature() != "mintingBedroomNft(uint256,uint256,uint256,address)" {
			t.Errorf("Unexpected signature %s", fn.Signature())
		}
		if fn.Mutability != NonPayable {
			t.Errorf("Expected nonpayable, got %s", fn.Mutability)
		}
		if len(fn.Inputs) != 4 || fn.Inputs[3].Name != "_owner" || fn.Inputs[3].Type != "address" {
			t.Errorf("Unexpected inputs %+v", fn.Inputs)
		}
		if len(fn.Outputs) != 0 {
			t.Errorf("Expected no outputs, got %d", len(fn.Outputs))
		}
		if fn.IsConstant() || fn.IsPayable() {
			t.Error("Expected nonpayable function to be neither constant nor payable")
		}
	})

	t.Run("skips non-function entries", func(t *testing.T) {
		table := testTable(t)

		if table.Len() != 5 {
			t.Errorf("Expected 5 functions, got %d", table.Len())
		}
		if _, ok := table.ABI().Events["Transfer"]; !ok {
			t.Error("Expected Transfer event in parsed ABI")
		}
		if _, ok := table.ABI().Errors["Unauthorized"]; !ok {
			t.Error("Expected Unauthorized error in parsed ABI")
		}
	})

	t.Run("maps legacy constant flag", func(t *testing.T) {
		table, err := ParseTable([]byte(`[{"constant":true,"inputs":[],"name":"total","outputs":[{"name":"","type":"uint256"}],"payable":false,"type":"function"}]`))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if table.Functions()[0].Mutability != View {
			t.Errorf("Expected view, got %s", table.Functions()[0].Mutability)
		}
	})

	t.Run("tuple signature", func(t *testing.T) {
		table, err := ParseTable([]byte(`[{"inputs":[{"components":[{"name":"id","type":"uint256"},{"name":"owner","type":"address"}],"name":"item","type":"tuple"}],"name":"store","outputs":[],"stateMutability":"nonpayable","type":"function"}]`))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if sig := table.Functions()[0].Signature(); sig != "store((uint256,address))" {
			t.Errorf("Unexpected signature %s", sig)
		}
	})
}

func TestParseTableMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `not json`},
		{"not an array", `{"abi": []}`},
		{"entry not an object", `[1]`},
		{"unknown type token", `[{"inputs":[{"name":"a","type":"strang"}],"name":"f","outputs":[],"stateMutability":"view","type":"function"}]`},
		{"unknown output type", `[{"inputs":[],"name":"f","outputs":[{"name":"","type":"strang"}],"stateMutability":"view","type":"function"}]`},
		{"unknown mutability", `[{"inputs":[],"name":"f","outputs":[],"stateMutability":"mutable","type":"function"}]`},
		{"unknown entry type", `[{"inputs":[],"name":"f","type":"modifier"}]`},
		{"missing name", `[{"inputs":[],"outputs":[],"stateMutability":"view","type":"function"}]`},
		{"duplicate signature", `[
			{"inputs":[{"name":"a","type":"uint256"}],"name":"f","outputs":[],"stateMutability":"view","type":"function"},
			{"inputs":[{"name":"b","type":"uint256"}],"name":"f","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"}
		]`},
		{"bad event type", `[{"inputs":[{"name":"a","type":"strang","indexed":true}],"name":"E","type":"event"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseTable([]byte(tt.json))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if table != nil {
				t.Error("Expected nil table on error")
			}
			var malformed *MalformedAbiError
			if !errors.As(err, &malformed) {
				t.Errorf("Expected MalformedAbiError, got %T: %v", err, err)
			}
		})
	}
}

func TestMustParseTable(t *testing.T) {
	t.Run("panics on malformed input", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic")
			}
		}()
		MustParseTable([]byte(`[{"type":"function"}]`))
	})
}

func TestTableLookup(t *testing.T) {
	table := testTable(t)

	t.Run("by name", func(t *testing.T) {
		fn, err := table.Lookup("add")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if fn.Signature() != "add(uint256,uint256)" {
			t.Errorf("Unexpected signature %s", fn.Signature())
		}
	})

	t.Run("by signature", func(t *testing.T) {
		fn, err := table.Lookup("transfer(address,uint256,bytes)")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(fn.Inputs) != 3 {
			t.Errorf("Expected 3 inputs, got %d", len(fn.Inputs))
		}
	})

	t.Run("signature with spaces", func(t *testing.T) {
		if _, err := table.Lookup("transfer(address, uint256)"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("overloaded name is ambiguous", func(t *testing.T) {
		_, err := table.Lookup("transfer")
		var ambiguous *AmbiguousMethodError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("Expected AmbiguousMethodError, got %v", err)
		}
		if len(ambiguous.Candidates) != 2 {
			t.Errorf("Expected 2 candidates, got %v", ambiguous.Candidates)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := table.Lookup("burn")
		var notFound *MethodNotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("Expected MethodNotFoundError, got %v", err)
		}
	})

	t.Run("unknown signature", func(t *testing.T) {
		_, err := table.Lookup("add(uint8,uint8)")
		var notFound *MethodNotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("Expected MethodNotFoundError, got %v", err)
		}
	})

	t.Run("by selector", func(t *testing.T) {
		fn, ok := table.LookupSelector([4]byte{0xa9, 0x05, 0x9c, 0xbb})
		if !ok {
			t.Fatal("Expected transfer(address,uint256) selector to resolve")
		}
		if fn.Signature() != "transfer(address,uint256)" {
			t.Errorf("Unexpected signature %s", fn.Signature())
		}
	})
}

func TestMutabilityValid(t *testing.T) {
	for _, m := range []Mutability{Pure, View, NonPayable, Payable} {
		if !m.Valid() {
			t.Errorf("Expected %s to be valid", m)
		}
	}
	if Mutability("constant").Valid() {
		t.Error("Expected constant to be invalid")
	}
}
