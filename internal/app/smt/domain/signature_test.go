package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestSignatures(t *testing.T) {
	all := []Signature{
		{Date: "2024-05-01", Line: "L1", Signer: "kim", Data: "v1", Timestamp: "2024-05-01 08:00:00.000000"},
		{Date: "2024-05-01", Line: "L1", Signer: "kim", Data: "v2", Timestamp: "2024-05-01 09:00:00.000000"},
		{Date: "2024-05-01", Line: "L1", Signer: "kim", Data: "v0", Timestamp: "2024-05-01 07:00:00.000000"},
		{Date: "2024-05-01", Line: "L1", Signer: "bae", Data: "b1", Timestamp: "2024-05-01 10:00:00.000000"},
		{Date: "2024-05-01", Line: "L2", Signer: "kim", Data: "other line", Timestamp: "2024-05-01 11:00:00.000000"},
		{Date: "2024-05-02", Line: "L1", Signer: "kim", Data: "other day", Timestamp: "2024-05-02 08:00:00.000000"},
	}

	got := LatestSignatures(all, "2024-05-01", "L1")

	require.Len(t, got, 2)
	assert.Equal(t, "bae", got[0].Signer)
	assert.Equal(t, "kim", got[1].Signer)
	assert.Equal(t, "v2", got[1].Data)
}

func TestLatestSignatures_TieKeepsLaterRow(t *testing.T) {
	ts := "2024-05-01 08:00:00.000000"
	all := []Signature{
		{Date: "d", Line: "L", Signer: "kim", Data: "first", Timestamp: ts},
		{Date: "d", Line: "L", Signer: "kim", Data: "second", Timestamp: ts},
	}
	got := LatestSignatures(all, "d", "L")
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Data)
}

func TestLatestSignatures_None(t *testing.T) {
	assert.Empty(t, LatestSignatures(nil, "d", "L"))
}
