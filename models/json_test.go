package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_DecodesNumberAndString(t *testing.T) {
	var v struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
		C FlexInt `json:"c"`
		D FlexInt `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":42,"b":"42","c":null,"d":""}`), &v))
	assert.Equal(t, 42, v.A.Int())
	assert.Equal(t, 42, v.B.Int())
	assert.Equal(t, 0, v.C.Int())
	assert.Equal(t, 0, v.D.Int())
}

func TestFlexInt_RejectsGarbage(t *testing.T) {
	var v FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
}

func TestFlexBool_Variants(t *testing.T) {
	cases := map[string]bool{
		`true`: true, `false`: false,
		`1`: true, `0`: false,
		`"1"`: true, `"0"`: false,
		`"true"`: true, `"false"`: false,
		`null`: false,
	}
	for raw, want := range cases {
		var v FlexBool
		require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.Equal(t, want, v.Bool(), raw)
	}
}

func TestFlexBool_RejectsGarbage(t *testing.T) {
	var v FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &v))
}

func TestOption_IntValue(t *testing.T) {
	assert.Equal(t, 7, IntOption(7, "GLOBE").IntValue())
	assert.Equal(t, 0, Option{Label: "S1", Value: "S1"}.IntValue())
}
