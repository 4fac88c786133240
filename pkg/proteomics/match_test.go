package proteomics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchColumns(t *testing.T) {
	var header = []string{"Genes", "S1_CTRL_Saline", "S2_CTRL_Saline", "S1_ABX_Saline", "S1_CTRL_Cocaine"}
	var matches = MatchColumns(header, DefaultGroups)
	assert.Equal(t, []string{"S1_CTRL_Saline", "S2_CTRL_Saline"}, matches["CTRL_Saline"])
	assert.Equal(t, []string{"S1_CTRL_Cocaine"}, matches["CTRL_Cocaine"])
	assert.Equal(t, []string{"S1_ABX_Saline"}, matches["ABX_Saline"])
	assert.Equal(t, []string{}, matches["ABX_Cocaine"])

	assert.Empty(t, MatchColumns(header, nil))
	assert.Empty(t, OverlappingColumns(header, DefaultGroups))
}

func TestOverlappingColumns(t *testing.T) {
	var header = []string{"Genes", "run_G1", "run_G10", "run_G2"}
	var overlaps = OverlappingColumns(header, []string{"G1", "G10", "G2"})
	assert.Equal(t, map[string][]string{"run_G10": {"G1", "G10"}}, overlaps)
}
