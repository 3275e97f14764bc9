package ljjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	lj "github.com/rmera/ljscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	S, err := lj.Argon().Scan(lj.ArgonDistances())
	require.NoError(t, err)
	R := NewReport(S, S.Minimum(), false, -21, 2)
	assert.Equal(t, "-1.65e-21 J", R.Minimum.Formatted)
	assert.Equal(t, 2, R.Minimum.Index)
	assert.Equal(t, 3.8, R.Minimum.Distance)
	assert.InEpsilon(t, 0.0103, R.EpsilonEV, 1e-12)

	var buf bytes.Buffer
	require.Nil(t, R.Send(&buf))
	assert.Contains(t, buf.String(), `"formatted": "-1.65e-21 J"`)
	R2, jerr := DecodeReport(&buf)
	require.Nil(t, jerr)
	assert.Equal(t, R, R2)
	assert.Equal(t, S.Minimum(), R2.Scan().Minimum())
}

func TestDecodeErrors(t *testing.T) {
	_, jerr := DecodeReport(strings.NewReader("{"))
	require.NotNil(t, jerr)
	assert.True(t, jerr.InProcess)
	_, jerr = DecodeReport(strings.NewReader(`{"distances_a":[1,2],"energies_j":[1]}`))
	require.NotNil(t, jerr)
	assert.Equal(t, "DecodeReport", jerr.Function)
}

func TestError(t *testing.T) {
	jerr := NewError("options", "main", fmt.Errorf("bad option"))
	assert.True(t, jerr.InOptions)
	assert.Equal(t, []string{"main", "caller"}, jerr.Decorate("caller"))
	var back Error
	require.NoError(t, json.Unmarshal(jerr.Marshal(), &back))
	assert.Equal(t, "bad option", back.Message)
	assert.True(t, back.IsError)
	var e lj.Error = jerr
	assert.Equal(t, "bad option", e.Error())
}
