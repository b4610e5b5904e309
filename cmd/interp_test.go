package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/clement/InputParameters"
)

func TestRunInterp(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
MeshKind: interval
K: 4
XMin: 0.
XMax: 1.
Field: cellindex # Can be cellindex or constant
NumCalls: 3
`)
	var input InputParameters.InterpParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.MeshKind, "interval")
	assert.Equal(t, input.K, 4)
	assert.Equal(t, input.NumCalls, 3)
	input.Print()
	RunInterp(&input)
}
