package airdrop

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

const (
	testAddr      = "0xabc0000000000000000000000000000000000001"
	testAddrMixed = "0xABC0000000000000000000000000000000000001"
	otherAddr     = "0xdef0000000000000000000000000000000000002"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return v
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		address string
		status  domain.EligibilityStatus
		message string
	}{
		{
			name:    "score detail string score",
			body:    `{"total":"1","detail":{"evm":{"` + testAddr + `":"5"}}}`,
			address: testAddrMixed,
			status:  domain.StatusEligible,
			message: "Eligible with score: 5",
		},
		{
			name:    "score detail numeric score",
			body:    `{"detail":{"evm":{"` + testAddr + `":12}}}`,
			address: testAddr,
			status:  domain.StatusEligible,
			message: "Eligible with score: 12",
		},
		{
			name:    "score detail zero string",
			body:    `{"detail":{"evm":{"` + testAddr + `":"0"}}}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNoScore,
		},
		{
			name:    "score detail zero number",
			body:    `{"detail":{"evm":{"` + testAddr + `":0}}}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNoScore,
		},
		{
			name:    "score detail empty",
			body:    `{"detail":{"evm":{}}}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNoScore,
		},
		{
			name:    "score detail other address only",
			body:    `{"detail":{"evm":{"` + otherAddr + `":"3"}}}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNoScore,
		},
		{
			name:    "score detail wins over eligible list",
			body:    `{"detail":{"evm":{}},"eligible":["` + testAddr + `"]}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNoScore,
		},
		{
			name:    "address key with message",
			body:    `{"` + testAddr + `":{"status":"eligible","message":"tier 2"}}`,
			address: testAddr,
			status:  domain.StatusEligible,
			message: "tier 2",
		},
		{
			name:    "address key without message",
			body:    `{"` + testAddr + `":{"eligible":false}}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNotEligible,
		},
		{
			name:    "address key is raw not normalized",
			body:    `{"` + testAddr + `":{"status":"eligible"},"status":"not_eligible"}`,
			address: testAddrMixed,
			status:  domain.StatusNotEligible,
			message: domain.MsgNotEligible,
		},
		{
			name:    "address key non-object",
			body:    `{"` + testAddr + `":true}`,
			address: testAddr,
			status:  domain.StatusError,
			message: domain.MsgCheckFailed,
		},
		{
			name:    "eligible list member",
			body:    `{"eligible":["` + testAddr + `"]}`,
			address: testAddr,
			status:  domain.StatusEligible,
			message: domain.MsgEligible,
		},
		{
			name:    "eligible list absent",
			body:    `{"eligible":["` + otherAddr + `"]}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNotEligible,
		},
		{
			name:    "not eligible list member",
			body:    `{"notEligible":["` + testAddr + `"]}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNotEligible,
		},
		{
			name:    "not eligible list absent",
			body:    `{"notEligible":[]}`,
			address: testAddr,
			status:  domain.StatusEligible,
			message: domain.MsgEligible,
		},
		{
			name:    "top level boolean true",
			body:    `{"eligible":true}`,
			address: testAddr,
			status:  domain.StatusEligible,
			message: domain.MsgEligible,
		},
		{
			name:    "top level boolean false",
			body:    `{"eligible":false,"message":"better luck next time"}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: "better luck next time",
		},
		{
			name:    "top level status string",
			body:    `{"status":"not_eligible"}`,
			address: testAddr,
			status:  domain.StatusNotEligible,
			message: domain.MsgNotEligible,
		},
		{
			name:    "false status falls through to missing eligible",
			body:    `{"status":false}`,
			address: testAddr,
			status:  domain.StatusError,
			message: domain.MsgCheckFailed,
		},
		{
			name:    "unknown status string",
			body:    `{"status":"pending"}`,
			address: testAddr,
			status:  domain.StatusError,
			message: domain.MsgCheckFailed,
		},
		{
			name:    "array body",
			body:    `[1,2,3]`,
			address: testAddr,
			status:  domain.StatusError,
			message: domain.MsgCheckFailed,
		},
		{
			name:    "null body",
			body:    `null`,
			address: testAddr,
			status:  domain.StatusError,
			message: domain.MsgUnknownStatus,
		},
		{
			name:    "string body",
			body:    `"ok"`,
			address: testAddr,
			status:  domain.StatusError,
			message: domain.MsgUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpret(decode(t, tt.body), tt.address)
			if got.status != tt.status {
				t.Errorf("status = %s, want %s", got.status, tt.status)
			}
			if got.message != tt.message {
				t.Errorf("message = %q, want %q", got.message, tt.message)
			}
		})
	}
}

func TestParseStatus_ScoreDetailAnyAddress(t *testing.T) {
	body := decode(t, `{"detail":{"evm":{"`+otherAddr+`":"0","`+testAddr+`":"2"}}}`)
	if got := parseStatus(body); got != domain.StatusEligible {
		t.Errorf("Expected eligible, got %s", got)
	}

	body = decode(t, `{"detail":{"evm":{"`+otherAddr+`":"0"}}}`)
	if got := parseStatus(body); got != domain.StatusNotEligible {
		t.Errorf("Expected not_eligible, got %s", got)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"0", true},
		{json.Number("0"), false},
		{json.Number("0.0"), false},
		{json.Number("1"), true},
		{float64(0), false},
		{map[string]any{}, true},
		{[]any{}, true},
	}

	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
